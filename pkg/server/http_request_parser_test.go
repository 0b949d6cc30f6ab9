package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

func TestParseBody(t *testing.T) {
	scenarios := []struct {
		name         string
		body         string
		expectedCode contract.ErrorCode
	}{
		{
			name: "Valid",
			body: `{"datasetId": 1, "type": 3}`,
		},
		{
			name:         "MissingRequiredField",
			body:         `{"type": 3}`,
			expectedCode: contract.ErrorCodeInvalidParameterValue,
		},
		{
			name:         "WrongFieldType",
			body:         `{"datasetId": "one", "type": 3}`,
			expectedCode: contract.ErrorCodeInvalidParameterValue,
		},
		{
			name:         "UnknownShareType",
			body:         `{"datasetId": 1, "type": 4}`,
			expectedCode: contract.ErrorCodeInvalidParameterValue,
		},
		{
			name:         "MalformedJSON",
			body:         `{"datasetId":`,
			expectedCode: contract.ErrorCodeBadRequest,
		},
	}

	parser, err := NewHTTPRequestParser()
	require.NoError(t, err)

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			app := fiber.New()

			var parseErr *contract.Error
			app.Post("/shares", func(c *fiber.Ctx) error {
				var input api.CreateShareRequest
				parseErr = parser.ParseBody(c, &input)

				return c.SendStatus(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(scenario.body))
			request.Header.Set("Content-Type", "application/json")

			_, err := app.Test(request)
			require.NoError(t, err)

			if scenario.expectedCode == "" {
				assert.Nil(t, parseErr)
			} else {
				require.NotNil(t, parseErr)
				assert.Equal(t, scenario.expectedCode, parseErr.Code)
			}
		})
	}
}
