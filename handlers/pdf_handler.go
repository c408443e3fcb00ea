package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"serenespa/models"
	"serenespa/repository"
	"serenespa/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
	Business models.BusinessInfo
	Uploader *utils.R2Uploader // nil when R2 is not configured
}

// AppointmentPDF generates and saves a confirmation PDF for one appointment
func (h *PDFHandler) AppointmentPDF(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing appointment id")
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid appointment id")
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create save directory")
		return
	}

	pdfBytes, err := utils.GenerateAppointmentPDF(h.Repo, id, h.Business)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	if len(pdfBytes) == 0 {
		writeError(w, http.StatusNotFound, "appointment not found")
		return
	}

	filename := fmt.Sprintf("appointment_%d_%d.pdf", id, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save PDF")
		return
	}

	resp := map[string]string{
		"message": "PDF generated",
		"file":    filename,
	}

	// Upload is best-effort; without R2 the local copy is the result.
	if h.Uploader != nil {
		if url, err := h.Uploader.Upload(pdfBytes, filename); err == nil {
			resp["url"] = url
		} else {
			log.Printf("R2 upload failed for %s: %v", filename, err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
