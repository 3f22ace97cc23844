package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"docsearch/internal/model"
	"docsearch/internal/service"
)

const uploadField = "files"

type ocrResult struct {
	FileName string  `json:"file_name"`
	Text     *string `json:"text,omitempty"`
	Error    string  `json:"error,omitempty"`
}

type uploadResponse struct {
	OCRResults []ocrResult `json:"ocr_results"`
}

type searchResponse struct {
	Message string `json:"message"`
}

type filesResponse struct {
	Files []model.FileLink `json:"files"`
}

// UploadFiles godoc
// @Summary      Upload documents for OCR
// @Description  Extracts text from every uploaded image or PDF and stores it. Failures are reported per file.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Images or PDF documents (repeatable)"
// @Success      200  {object}  uploadResponse
// @Failure      400  {object}  errorPayload
// @Failure      405  {object}  errorPayload
// @Router       /upload [post]
func UploadFiles(svc service.IngestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil || len(form.File[uploadField]) == 0 {
			return ErrNoFiles
		}

		headers := form.File[uploadField]
		files := make([]service.UploadedFile, 0, len(headers))
		for _, fh := range headers {
			files = append(files, service.UploadedFile{
				Name: fh.Filename,
				Open: openPart(fh),
			})
		}

		outcomes := svc.Ingest(c.UserContext(), files)

		res := uploadResponse{OCRResults: make([]ocrResult, 0, len(outcomes))}
		for _, o := range outcomes {
			r := ocrResult{FileName: o.FileName}
			if o.Err != nil {
				r.Error = o.Err.Error()
			} else {
				text := o.Text
				r.Text = &text
			}
			res.OCRResults = append(res.OCRResults, r)
		}
		return c.JSON(res)
	}
}

func openPart(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}

// MethodNotAllowed rejects every verb it is mounted for.
func MethodNotAllowed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	}
}

// Search godoc
// @Summary      Ask a question over all stored text
// @Description  The answer is empty when the language model is unavailable.
// @Tags         documents
// @Produce      json
// @Param        search_query  query  string  false  "Question"
// @Success      200  {object}  searchResponse
// @Failure      500  {object}  errorPayload
// @Router       /search [get]
func Search(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		answer, err := svc.Search(c.UserContext(), c.Query("search_query"))
		if err != nil {
			return err
		}
		return c.JSON(searchResponse{Message: answer})
	}
}

// ListFiles godoc
// @Summary      List stored files
// @Tags         documents
// @Produce      json
// @Success      200  {object}  filesResponse
// @Failure      500  {object}  errorPayload
// @Router       /files [get]
func ListFiles(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.ListFiles(c.UserContext())
		if err != nil {
			return err
		}
		if files == nil {
			files = []model.FileLink{}
		}
		return c.JSON(filesResponse{Files: files})
	}
}
