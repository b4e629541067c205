package services

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/storage"
	"github.com/cryptdox/site-api/internal/utils"
)

const (
	maxCVSize          = 5 << 20
	minObjectiveLength = 50
)

// cvExtensions maps the accepted CV MIME types to a fallback file extension
// for uploads whose original name carries none.
var cvExtensions = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
}

// SubmitApplicationInput is one job application as received from the form,
// CV attachment included.
type SubmitApplicationInput struct {
	JobID         string
	ApplicantName string
	Email         string
	Objective     string

	FileName string
	FileSize int64
	MimeType string
	File     io.Reader
}

type ApplicationService interface {
	// Submit validates the form, uploads the CV, then inserts the
	// application row referencing the CV's public URL. An upload failure
	// aborts before the insert; an insert failure after a successful upload
	// is reported distinctly and the uploaded object is retained.
	Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error)
}

type applicationService struct {
	jobs         JobService
	applications pgrepo.ApplicationRepository
	uploader     storage.Uploader
}

func NewApplicationService(jobs JobService, applications pgrepo.ApplicationRepository, uploader storage.Uploader) ApplicationService {
	return &applicationService{jobs: jobs, applications: applications, uploader: uploader}
}

func (s *applicationService) Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if fields := validateApplication(in); len(fields) > 0 {
		return nil, utils.EV(op, fields...)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	// the posting must still be open before anything is stored
	job, err := s.jobs.Get(ctx, in.JobID)
	if err != nil {
		return nil, err
	}

	publicURL, err := s.uploader.Upload(ctx, cvObjectKey(in), in.MimeType, in.File)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload cv", err)
	}

	now := time.Now().UTC()
	objective := in.Objective
	row := &models.Application{
		ID:            uuid.NewString(),
		JobID:         job.ID,
		ApplicantName: in.ApplicantName,
		Email:         in.Email,
		Objective:     &objective,
		CVURL:         &publicURL,
		Reviewed:      false,
		Approved:      false,
		AppliedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.applications.Insert(ctx, row); err != nil {
		// the uploaded CV is retained; there is no compensating delete
		return nil, utils.E(utils.CodeInternal, op, "failed to submit application", err)
	}
	return row, nil
}

func validateApplication(in SubmitApplicationInput) []utils.FieldError {
	var fields []utils.FieldError
	if strings.TrimSpace(in.ApplicantName) == "" {
		fields = append(fields, utils.FieldError{Field: "applicant_name", Message: "name is required"})
	}
	if in.Email == "" {
		fields = append(fields, utils.FieldError{Field: "email", Message: "email is required"})
	} else if !validEmail(in.Email) {
		fields = append(fields, utils.FieldError{Field: "email", Message: "invalid email address"})
	}
	if strings.TrimSpace(in.Objective) == "" {
		fields = append(fields, utils.FieldError{Field: "objective", Message: "objective is required"})
	} else if utf8.RuneCountInString(in.Objective) < minObjectiveLength {
		fields = append(fields, utils.FieldError{Field: "objective", Message: "objective must be at least 50 characters"})
	}

	if in.File == nil {
		fields = append(fields, utils.FieldError{Field: "cv", Message: "please upload your cv"})
		return fields
	}
	if _, ok := cvExtensions[in.MimeType]; !ok {
		fields = append(fields, utils.FieldError{Field: "cv", Message: "please upload a pdf or word document"})
	}
	if in.FileSize <= 0 || in.FileSize > maxCVSize {
		fields = append(fields, utils.FieldError{Field: "cv", Message: "file size must be less than 5MB"})
	}
	return fields
}

// cvObjectKey builds "cvs/<millis>-<token>.<ext>". The random token avoids a
// collision when two uploads land in the same millisecond.
func cvObjectKey(in SubmitApplicationInput) string {
	ext := strings.TrimPrefix(filepath.Ext(in.FileName), ".")
	if ext == "" {
		ext = cvExtensions[in.MimeType]
	}
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "cvs/" + millis + "-" + randToken(7) + "." + ext
}
