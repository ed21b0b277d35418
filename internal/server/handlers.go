package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/domain"
	apperrors "github.com/taxsim/tax-estimator/internal/errors"
	"github.com/taxsim/tax-estimator/internal/output"
	"github.com/taxsim/tax-estimator/internal/upload"
)

// TaxHandler serves the estimation and upload endpoints.
type TaxHandler struct {
	engine  *calculation.Engine
	uploads *upload.Validator
	logger  *zap.Logger
	now     func() time.Time
}

// NewTaxHandler creates the handler. The clock is injectable for tests.
func NewTaxHandler(engine *calculation.Engine, uploads *upload.Validator, logger *zap.Logger) *TaxHandler {
	return &TaxHandler{
		engine:  engine,
		uploads: uploads,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(c *gin.Context, status int, code, message, detail string) {
	c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message, Detail: detail}})
}

// Health reports liveness.
func (h *TaxHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CalculateTaxes handles POST /api/calculate-taxes. It accepts a JSON body
// or a form (urlencoded or multipart with optional document attachments),
// runs the engine, and serves the full report.
func (h *TaxHandler) CalculateTaxes(c *gin.Context) {
	var req domain.EstimateRequest
	var documents []domain.DocumentDescriptor

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", err.Error())
			return
		}
	} else {
		req = requestFromForm(c)
		if form, err := c.MultipartForm(); err == nil && form != nil {
			docs, uerr := h.uploads.Validate(form.File["documents"])
			if uerr != nil {
				writeError(c, http.StatusBadRequest, string(apperrors.TypeUpload), errMessage(uerr), "")
				return
			}
			documents = docs
		}
	}

	result, err := h.engine.Estimate(req)
	if err != nil {
		if apperrors.IsType(err, apperrors.TypeValidation) {
			writeError(c, http.StatusBadRequest, string(apperrors.TypeValidation), errMessage(err), "")
			return
		}
		h.logger.Error("tax calculation failed",
			zap.Error(err),
			zap.String("requestId", c.GetString(requestIDKey)),
		)
		writeError(c, http.StatusInternalServerError, string(apperrors.TypeComputation), "error calculating taxes", errMessage(err))
		return
	}

	result.Documents = documents
	c.JSON(http.StatusOK, output.NewReport(result, h.engine.Tables().Year, h.now()))
}

// UploadDocuments handles POST /api/upload: validates attachments and
// returns their descriptors without computing tax.
func (h *TaxHandler) UploadDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, http.StatusBadRequest, string(apperrors.TypeValidation), "expected multipart form data", "")
		return
	}

	files := form.File["documents"]
	if len(files) == 0 {
		writeError(c, http.StatusBadRequest, string(apperrors.TypeValidation), "no files uploaded", "")
		return
	}

	documents, err := h.uploads.Validate(files)
	if err != nil {
		writeError(c, http.StatusBadRequest, string(apperrors.TypeUpload), errMessage(err), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "files uploaded successfully",
		"uploadedDocuments": documents,
		"count":             len(documents),
	})
}

// requestFromForm copies the known form fields into an EstimateRequest.
// Unknown fields are ignored; parsing and defaulting happen in the engine.
func requestFromForm(c *gin.Context) domain.EstimateRequest {
	return domain.EstimateRequest{
		FilingStatus:         c.PostForm("filingStatus"),
		Income:               c.PostForm("income"),
		Age:                  c.PostForm("age"),
		Dependents:           c.PostForm("dependents"),
		ItemizedDeductions:   c.PostForm("itemizedDeductions"),
		UseStandardDeduction: c.PostForm("useStandardDeduction"),
		W2Income:             c.PostForm("w2Income"),
		SelfEmploymentIncome: c.PostForm("selfEmploymentIncome"),
		InterestIncome:       c.PostForm("interestIncome"),
		DividendIncome:       c.PostForm("dividendIncome"),
		CapitalGains:         c.PostForm("capitalGains"),
		OtherIncome:          c.PostForm("otherIncome"),
	}
}

func errMessage(err error) string {
	if e, ok := err.(*apperrors.Error); ok {
		return e.Message
	}
	return err.Error()
}
