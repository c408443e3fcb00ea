package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"serenespa/models"
	"serenespa/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateAppointmentPDF renders a booking confirmation sheet for one
// appointment and prints it to PDF through headless Chrome.
func GenerateAppointmentPDF(repo *repository.PDFRepository, apptID int64, business models.BusinessInfo) ([]byte, error) {
	appt, err := repo.GetAppointmentForPDF(apptID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, nil
	}

	bookedOn := "-"
	if !appt.CreatedAt.IsZero() {
		bookedOn = appt.CreatedAt.Format("02-Jan-2006 15:04")
	}

	tmpl, err := template.ParseFiles("templates/appointment_template.html")
	if err != nil {
		return nil, err
	}

	data := models.AppointmentPDFData{
		Business:    business,
		Appointment: appt,
		Date:        appt.Date,
		BookedOn:    bookedOn,
		Reference:   appt.CreatedAt.Format("20060102") + "-" + appt.Time,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.confirmation {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='confirmation'>` + body.String() + `</div></body></html>`

	// Chrome only takes a URL, so stage the HTML in a temp file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "appointment_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
