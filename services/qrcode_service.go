// services/qrcode_service.go
package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateReportQRCode creates a PNG QR code pointing at a report's detail
// page, for sharing a submission offline.
func GenerateReportQRCode(applicationURL string, reportID int64, size int) ([]byte, error) {
	url := fmt.Sprintf("%s/reports/%d", applicationURL, reportID)
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
