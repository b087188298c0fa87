package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dongans/billiard-app/utils"
)

// requestError membawa status HTTP keluar dari closure transaksi supaya
// handler bisa memetakan kegagalan bisnis ke respons yang tepat.
type requestError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *requestError) Error() string { return e.Message }

func newRequestError(code int, message string) *requestError {
	return &requestError{Code: code, Message: message}
}

// respondRequestError memetakan requestError ke envelope JSON; error lain
// dianggap kegagalan internal.
func respondRequestError(c *gin.Context, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		if reqErr.Data != nil {
			utils.RespondJSON(c, reqErr.Code, reqErr.Message, reqErr.Data)
			return
		}
		utils.RespondError(c, reqErr.Code, reqErr)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

// isDuplicateKeyError mengenali pelanggaran index unik dari MySQL maupun
// SQLite (dipakai saat insert booking kalah balapan dengan request lain).
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
