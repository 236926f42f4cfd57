package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/internal/handlers/test"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleImpacts() []entity.LeaveImpact {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	return []entity.LeaveImpact{
		{
			LeaveRecord:       entity.LeaveRecord{Professional: "PEREZ, ANA", StartDate: day(4), EndDate: day(10), Reason: "Vacaciones", Department: "Clínica"},
			CancelledSessions: 2,
			Method:            domain.MethodSchedule,
		},
	}
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)

	var msg slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &msg))
	return msg
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should post the summary of the requested window",
			text: "resumen 14",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().
					Impact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, opts report.Options) (*report.ImpactReport, error) {
						assert.Equal(t, 13*24*time.Hour, opts.To.Sub(opts.From))
						assert.Equal(t, report.GroupByDepartment, opts.GroupBy)
						return report.BuildImpact(sampleImpacts(), opts), nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "*Resumen de ausencias*")
			},
		},
		{
			name: "Should default the summary to seven days",
			text: "resumen",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().
					Impact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, opts report.Options) (*report.ImpactReport, error) {
						assert.Equal(t, 6*24*time.Hour, opts.To.Sub(opts.From))
						return report.BuildImpact(nil, opts), nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "*0* sesiones canceladas en *0* ausencias")
			},
		},
		{
			name: "Should reject an invalid day count",
			text: "resumen muchos",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "cantidad de días inválida")
			},
		},
		{
			name: "Should report the service failure",
			text: "resumen",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().Impact(gomock.Any(), gomock.Any()).Return(nil, errors.New("sheet offline")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error al generar el resumen", msg.Text)
			},
		},
		{
			name: "Should filter by the full professional name",
			text: "profesional Perez, Ana",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().
					Impact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, opts report.Options) (*report.ImpactReport, error) {
						assert.Equal(t, []string{"PEREZ, ANA"}, opts.Professionals)
						return report.BuildImpact(sampleImpacts(), opts), nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "*Perez, Ana*: 1 ausencias, *2* sesiones canceladas.")
			},
		},
		{
			name: "Should ask for a name",
			text: "profesional",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "`/ausencias profesional NOMBRE`")
			},
		},
		{
			name: "Should show the weekly schedule",
			text: "agenda JONES",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().
					ProfessionalSchedule(gomock.Any(), "JONES").
					Return(map[domain.Weekday]int{domain.Monday: 1, domain.Wednesday: 2}, true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "• Lunes: 1\n• Miércoles: 2")
			},
		},
		{
			name: "Should explain when the professional has no schedule",
			text: "agenda DOE",
			buildMocks: func(m test.ServiceMocks) {
				m.ReportServiceMock.EXPECT().
					ProfessionalSchedule(gomock.Any(), "DOE").
					Return(map[domain.Weekday]int{}, false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "no figura en la agenda")
			},
		},
		{
			name: "Should show help text",
			text: "ayuda",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "*Comandos disponibles:*")
			},
		},
		{
			name: "Should reject unknown commands",
			text: "borrar",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "❌ comando desconocido: borrar", msg.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			req := test.CreateSlackRequest(t, "/ausencias", tt.text, "C123456789", "general", "U987654321", "T123456789", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/ausencias", "resumen", "C123456789", "general", "U987654321", "T123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleSlashCommand_MissingHeaders(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/ausencias", "resumen", "C123456789", "general", "U987654321", "T123456789", test.SigningSecret)
	req.Header.Del("X-Slack-Signature")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
