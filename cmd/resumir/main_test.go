package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumen-backend/internal/domain/entity"
	hsummary "resumen-backend/internal/handler/http/summary"
	sumUC "resumen-backend/internal/usecase/summary"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("palabra ", n))
}

func setNoopEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUMMARIZER_PROVIDER", "noop")
	t.Setenv("API_KEY", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_StdinShortText(t *testing.T) {
	setNoopEnv(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, strings.NewReader(words(30)), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.JSONEq(t, `{"resumen": "`+words(30)+`", "ideas_principales": []}`, stdout.String())
}

func TestRun_File(t *testing.T) {
	setNoopEnv(t)
	path := filepath.Join(t.TempDir(), "texto.txt")
	require.NoError(t, os.WriteFile(path, []byte(words(25)), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--file", path, "--output", "text"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, words(25)+"\n", stdout.String())
}

func TestRun_ValidationError(t *testing.T) {
	setNoopEnv(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, strings.NewReader("muy corto"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
	assert.Equal(t, "El texto es demasiado corto. Mínimo 20 palabras.", body["error"])
}

func TestRun_MissingFile(t *testing.T) {
	setNoopEnv(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--file", filepath.Join(t.TempDir(), "nope.txt")}, nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to read input")
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidOutputFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--output", "xml"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Invalid output format")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation",
			err:  entity.ValidateText("", entity.DefaultMinWords, entity.DefaultMaxWords),
			want: "No se recibió ningún texto.",
		},
		{
			name: "no valid summary",
			err:  sumUC.ErrNoValidSummary,
			want: "No se pudo generar un resumen válido.",
		},
		{
			name: "unexpected",
			err:  &sumUC.UnexpectedError{Err: errors.New("timeout")},
			want: "Ocurrió un error: timeout",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Ocurrió un error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestWriteResult_Text(t *testing.T) {
	var buf bytes.Buffer
	writeResult(&buf, "text", hsummary.Response{Resumen: "Resumen.", IdeasPrincipales: []string{"Uno", "Dos"}})

	assert.Equal(t, "Resumen.\n\nIdeas principales:\n1. Uno\n2. Dos\n", buf.String())
}
