package mailer

import "fmt"

// PesanKonfirmasi membungkus isi email dalam layout standar dengan sapaan.
func PesanKonfirmasi(name, value string) string {
	return fmt.Sprintf(`
  <!DOCTYPE html>
  <html>
    <head>
      <meta charset="UTF-8" />
      <title>Konfirmasi Booking</title>
      <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
        .container { background-color: #ffffff; max-width: 600px; margin: 30px auto; padding: 30px;
          border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
        .header { text-align: center; padding-bottom: 20px; }
        .header h1 { color: #2c3e50; }
        .content { font-size: 16px; color: #333; line-height: 1.6; }
        .footer { margin-top: 30px; font-size: 12px; color: #888; text-align: center; }
      </style>
    </head>
    <body>
      <div class="container">
        <div class="header">
          <h1>Halo, %s!</h1>
        </div>
        <div class="content">%s</div>
        <div class="footer">
          <p>Email ini dikirim otomatis. Jangan membalas email ini.</p>
        </div>
      </div>
    </body>
  </html>
  `, name, value)
}

// DetailKonfirmasi menyusun isi email konfirmasi/penolakan booking.
func DetailKonfirmasi(konfirmasi bool, tanggal, namaMeja, jam, durasi, totalBayar, kode string) string {
	status := "❌ ditolak"
	if konfirmasi {
		status = "✅ dikonfirmasi"
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
      <p>
        Booking Anda telah <strong>%s</strong>.
        Berikut adalah detail booking Anda:
      </p>

      <table style="margin-top: 20px; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px;">📅 <strong>Tanggal Booking:</strong></td>
          <td style="padding: 8px;">%s</td>
        </tr>
        <tr>
          <td style="padding: 8px;">🪑 <strong>Meja:</strong></td>
          <td style="padding: 8px;">%s</td>
        </tr>
        <tr>
          <td style="padding: 8px;">⏰ <strong>Jam:</strong></td>
          <td style="padding: 8px;">%s WIB</td>
        </tr>
        <tr>
          <td style="padding: 8px;">⏱️ <strong>Durasi:</strong></td>
          <td style="padding: 8px;">%s jam</td>
        </tr>
        <tr>
          <td style="padding: 8px;">💸 <strong>Total Bayar:</strong></td>
          <td style="padding: 8px;">%s</td>
        </tr>
        <tr>
          <td style="padding: 8px;">🔖 <strong>Kode Booking:</strong></td>
          <td style="padding: 8px;">%s</td>
        </tr>
      </table>

      <p style="margin-top: 30px;">Silakan datang sesuai jadwal. Terima kasih telah melakukan booking di <strong>Dongans Billiard</strong> 🎱</p>
      <p style="margin-top: 30px;">Jika ada pertanyaan atau kendala terkait booking Anda, silakan hubungi admin melalui WhatsApp di <strong>0812-3456-7890</strong> 📞.</p>
    </div>`,
		status, tanggal, namaMeja, jam, durasi, totalBayar, kode)
}
