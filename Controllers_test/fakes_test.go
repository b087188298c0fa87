package Controllers_test

import (
	"context"
	"fmt"
)

// fakeSender merekam email yang dikirim controller selama test.
type fakeSender struct {
	To      string
	Subject string
	Body    string
	Sent    int
	Err     error
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	if f.Err != nil {
		return f.Err
	}
	f.To = to
	f.Subject = subject
	f.Body = htmlBody
	f.Sent++
	return nil
}

// fakeStorage menggantikan object storage sungguhan; upload hanya mencatat
// nama file dan mengembalikan URL palsu.
type fakeStorage struct {
	Uploaded []string
	Deleted  []string
}

func (f *fakeStorage) Upload(_ context.Context, folder, filename, _ string, _ []byte) (string, error) {
	objectPath := folder + "/" + filename
	f.Uploaded = append(f.Uploaded, objectPath)
	return fmt.Sprintf("https://storage.test/bucket/uploads/%s", objectPath), nil
}

func (f *fakeStorage) Delete(_ context.Context, objectPath string) error {
	f.Deleted = append(f.Deleted, objectPath)
	return nil
}
