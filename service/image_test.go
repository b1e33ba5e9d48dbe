package service_test

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasacalle/service"
)

func TestEncodeImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10}

	encoded, err := service.EncodeImage(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), encoded)

	empty, err := service.EncodeImage(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func multipartBody(t *testing.T, build func(w *multipart.Writer)) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	build(w)
	require.NoError(t, w.Close())
	return &body, w.Boundary()
}

func TestReadUploadedImage(t *testing.T) {
	image := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 1024)

	tests := []struct {
		name    string
		build   func(w *multipart.Writer)
		want    string
		wantErr error
	}{
		{
			name: "file part after text fields",
			build: func(w *multipart.Writer) {
				require.NoError(t, w.WriteField("NOMBRE_PLATO", "ignorado"))
				fw, err := w.CreateFormFile("logo", "plato.png")
				require.NoError(t, err)
				_, err = fw.Write(image)
				require.NoError(t, err)
			},
			want: base64.StdEncoding.EncodeToString(image),
		},
		{
			name: "text field with the same name is not a file",
			build: func(w *multipart.Writer) {
				require.NoError(t, w.WriteField("logo", "not a file"))
			},
			wantErr: service.ErrImageMissing,
		},
		{
			name: "other file field",
			build: func(w *multipart.Writer) {
				fw, err := w.CreateFormFile("imagen", "plato.png")
				require.NoError(t, err)
				_, err = fw.Write(image)
				require.NoError(t, err)
			},
			wantErr: service.ErrImageMissing,
		},
		{
			name:    "empty body",
			build:   func(w *multipart.Writer) {},
			wantErr: service.ErrImageMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, boundary := multipartBody(t, tt.build)

			got, err := service.ReadUploadedImage(multipart.NewReader(body, boundary), "logo")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
