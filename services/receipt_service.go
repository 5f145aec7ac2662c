package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/wambuidev/learning_center/configs"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; margin: 40px; color: #222; }
  .receipt { border: 2px solid #2c3e50; padding: 32px; }
  h1 { margin: 0 0 4px 0; font-size: 22px; color: #2c3e50; }
  .meta { color: #666; font-size: 13px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; font-size: 15px; }
  td { padding: 8px 4px; border-bottom: 1px solid #ddd; }
  td.label { color: #666; width: 40%; }
  .amount { font-size: 20px; font-weight: bold; margin-top: 24px; }
</style>
</head>
<body>
<div class="receipt">
  <h1>{{.CenterName}}</h1>
  <div class="meta">Payment Receipt · {{.ReceiptNumber}} · {{.IssuedOn}}</div>
  <table>
    <tr><td class="label">Student</td><td>{{.StudentName}}</td></tr>
    <tr><td class="label">Class</td><td>{{.ClassName}}</td></tr>
    <tr><td class="label">Month</td><td>{{.Month}}</td></tr>
    <tr><td class="label">Method</td><td>{{.Method}}</td></tr>
  </table>
  <div class="amount">Amount paid: {{.Amount}}</div>
</div>
</body>
</html>`

// GenerateReceipt renders a PDF receipt for a paid payment, uploads it, and
// stores the URL on the payment record. Meant to run in a goroutine after the
// payment is recorded; failures are logged, never surfaced to the payer flow.
func GenerateReceipt(payment models.Payment) {
	if payment.ReceiptNumber == nil {
		log.Printf("🔥 Payment %s has no receipt number, skipping receipt generation", payment.ID)
		return
	}

	htmlData, err := renderReceiptHTML(payment)
	if err != nil {
		log.Printf("🔥 Failed to render receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadReceiptPDF(pdfBytes, *payment.ReceiptNumber)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt PDF: %v", err)
		return
	}

	if err := database.DB.Model(&models.Payment{}).Where("id = ?", payment.ID).
		Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for payment %s: %v", payment.ID, err)
		return
	}
	log.Printf("✅ Generated receipt %s for payment %s.", *payment.ReceiptNumber, payment.ID)
}

func renderReceiptHTML(payment models.Payment) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	issued := time.Now()
	if payment.PaidAt != nil {
		issued = *payment.PaidAt
	}

	data := struct {
		CenterName    string
		ReceiptNumber string
		IssuedOn      string
		StudentName   string
		ClassName     string
		Month         string
		Method        string
		Amount        string
	}{
		CenterName:    config.Config("CENTER_NAME"),
		ReceiptNumber: *payment.ReceiptNumber,
		IssuedOn:      issued.Format("January 2, 2006"),
		StudentName:   payment.Student.FullName,
		ClassName:     payment.Class.Name,
		Month:         payment.Month,
		Method:        payment.Method,
		Amount:        fmt.Sprintf("%.2f", payment.Amount),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptPDF(fileBytes []byte, receiptNumber string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", receiptNumber, uuid.New().String()),
		Folder:       "learning_center_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
