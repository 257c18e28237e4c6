package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"manna/internal/delivery/api/validator"
	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

type requestOpts struct {
	body    string
	session *entity.Session
	params  map[string]string
}

func newTestContext(method, target string, opts requestOpts) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(opts.body))
	if opts.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(opts.params) > 0 {
		names := make([]string, 0, len(opts.params))
		values := make([]string, 0, len(opts.params))
		for name, value := range opts.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if opts.session != nil {
		deliverycontext.SetSession(c, opts.session)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func userSession() *entity.Session {
	return &entity.Session{
		Identity: entity.Identity{UID: "uid-1", DisplayName: "Maria", Email: "maria@example.com"},
		Role:     entity.RoleUser,
	}
}
