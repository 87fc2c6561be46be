package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"cmcs-backend/internal/domain/uow"
	"cmcs-backend/internal/testutil/claimmock"
	"cmcs-backend/internal/testutil/documentmock"
	"cmcs-backend/internal/testutil/uowmock"
	uc "cmcs-backend/internal/usecase/claim"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// storeMock records saved documents in memory.
type storeMock struct {
	saved map[string][]byte
	err   error
}

func newStoreMock() *storeMock { return &storeMock{saved: map[string][]byte{}} }

func (s *storeMock) Save(name string, content []byte) error {
	if s.err != nil {
		return s.err
	}
	s.saved[name] = content
	return nil
}

func (s *storeMock) Remove(name string) error {
	delete(s.saved, name)
	return nil
}

func newClaimUsecase(claims *claimmock.Repo, docs *documentmock.Repo, store *storeMock) *uc.Usecase {
	return uc.NewUsecase(claims, docs,
		uowmock.Passthrough(uow.Repos{Claims: claims, Documents: docs}),
		store, zap.NewNop())
}

// -------- tests --------

func TestHealth(t *testing.T) {
	e := echo.New()
	h := NewHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if m["status"] != "ok" {
		t.Fatalf("status field = %v", m["status"])
	}
}
