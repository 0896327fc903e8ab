package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/knowledge"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeUseCase struct {
	files []knowledge.UploadedFile
	err   error
}

func (f *fakeUseCase) Train(ctx context.Context, files []knowledge.UploadedFile) (knowledge.TrainOutput, error) {
	f.files = files
	if f.err != nil {
		return knowledge.TrainOutput{}, f.err
	}
	return knowledge.TrainOutput{Documents: len(files), Chunks: len(files)}, nil
}

func (f *fakeUseCase) Ask(ctx context.Context, query string) (string, error) {
	return "", nil
}

func newTestRouter(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), New(nopLogger{}, uc))
	return r
}

func postFiles(t *testing.T, r *gin.Engine, names map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, content := range names {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload-documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadDocumentsOK(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := postFiles(t, r, map[string]string{"handbook.pdf": "pdf bytes"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["status"] != "Success" || resp["message"] != "Conversational model trained successfully." {
		t.Errorf("resp = %v", resp)
	}

	if len(uc.files) != 1 || uc.files[0].Name != "handbook.pdf" {
		t.Errorf("files = %+v", uc.files)
	}
}

func TestUploadDocumentsEmptyBatch(t *testing.T) {
	uc := &fakeUseCase{err: knowledge.ErrNoFiles}
	r := newTestRouter(uc)

	w := postFiles(t, r, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["detail"] != "No files uploaded." {
		t.Errorf("detail = %q", resp["detail"])
	}
}

func TestUploadDocumentsNoContent(t *testing.T) {
	uc := &fakeUseCase{err: knowledge.ErrNoContent}
	r := newTestRouter(uc)

	w := postFiles(t, r, map[string]string{"scan.pdf": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUploadDocumentsTrainingFailure(t *testing.T) {
	uc := &fakeUseCase{err: context.DeadlineExceeded}
	r := newTestRouter(uc)

	w := postFiles(t, r, map[string]string{"handbook.pdf": "x"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
