package eventserver_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/labstack/echo/v4"
	"github.com/makerlabs/print-billing/eventio"
	"github.com/makerlabs/print-billing/eventserver/auth"
	"github.com/makerlabs/print-billing/fakes"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/makerlabs/print-billing/eventserver"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UsageWebhookHandler", func() {

	const secret = "s3cret"

	var (
		fakeReconciler *fakes.FakeReconciler
		server         *echo.Echo
	)

	post := func(token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/usage", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)
		return res
	}

	notificationBody := `{
		"type": "updated",
		"details": {
			"log": {
				"id": 42,
				"resourceId": 7,
				"memberId": 9,
				"createdAt": "2023-04-01T12:00:00Z",
				"stoppedAt": "2023-04-01T12:30:00Z",
				"stopType": "manual"
			},
			"resource": {"name": "Form 3"}
		}
	}`

	BeforeEach(func() {
		fakeReconciler = &fakes.FakeReconciler{}
		server = New(Config{
			Authenticator: &auth.SharedSecretAuthenticator{Secret: secret},
			Reconciler:    fakeReconciler,
			Logger:        lager.NewLogger("test"),
		})
	})

	It("rejects requests without the shared secret", func() {
		res := post("", notificationBody)
		Expect(res.Code).To(Equal(http.StatusUnauthorized))
		Expect(fakeReconciler.ReconcileCallCount()).To(Equal(0))
	})

	It("rejects requests bearing the wrong secret", func() {
		res := post("wrong", notificationBody)
		Expect(res.Code).To(Equal(http.StatusUnauthorized))
		Expect(fakeReconciler.ReconcileCallCount()).To(Equal(0))
	})

	It("decodes the notification and returns the reconcile result", func() {
		fakeReconciler.ReconcileReturns(&eventio.ReconcileResult{
			Outcome: eventio.OutcomeBilled,
			EventID: 42,
			Charges: []eventio.ChargeLine{
				{Description: "bracket on Form 3", Amount: 1.25, LinkedEventID: 42},
			},
		}, nil)

		res := post(secret, notificationBody)
		Expect(res.Code).To(Equal(http.StatusOK))
		Expect(res.Body.String()).To(MatchJSON(`{
			"outcome": "billed",
			"event_id": 42,
			"charges": [
				{"description": "bracket on Form 3", "amount": 1.25, "linked_event_id": 42}
			]
		}`))

		Expect(fakeReconciler.ReconcileCallCount()).To(Equal(1))
		_, notification := fakeReconciler.ReconcileArgsForCall(0)
		Expect(notification.Kind).To(Equal(eventio.NotificationUpdated))
		Expect(notification.Details.Resource.Name).To(Equal("Form 3"))
		Expect(notification.Details.Log.ID).To(Equal(int64(42)))
		Expect(notification.Details.Log.CreatedAt).To(
			BeTemporally("==", time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)))
	})

	It("acknowledges irrelevant notification kinds as ignored", func() {
		fakeReconciler.ReconcileReturns(&eventio.ReconcileResult{
			Outcome: eventio.OutcomeIgnored,
			EventID: 42,
			Reason:  "irrelevant notification type",
		}, nil)

		res := post(secret, `{"type": "deleted", "details": {"log": {"id": 42}}}`)
		Expect(res.Code).To(Equal(http.StatusOK))
		Expect(res.Body.String()).To(MatchJSON(`{
			"outcome": "ignored",
			"event_id": 42,
			"reason": "irrelevant notification type"
		}`))
	})

	It("rejects unparseable payloads", func() {
		res := post(secret, `{"type": `)
		Expect(res.Code).To(Equal(http.StatusBadRequest))
		Expect(fakeReconciler.ReconcileCallCount()).To(Equal(0))
	})

	DescribeTable("maps reconciliation failures onto statuses",
		func(err error, expectedCode int) {
			fakeReconciler.ReconcileReturns(nil, err)
			res := post(secret, notificationBody)
			Expect(res.Code).To(Equal(expectedCode))
		},
		Entry("validation failures are the caller's fault",
			&eventio.ValidationError{Reason: "usage events must have an id"}, http.StatusBadRequest),
		Entry("exhausted conflict retries surface as conflict",
			&eventio.ConflictError{EventID: 42, Attempts: 5}, http.StatusConflict),
		Entry("vendor auth failures are an upstream problem",
			&eventio.AuthError{Err: fmt.Errorf("token exchange failed")}, http.StatusBadGateway),
		Entry("vendor fetch failures are an upstream problem",
			&eventio.FetchError{StatusCode: 502}, http.StatusBadGateway),
		Entry("billing post failures are an upstream problem",
			&eventio.BillingPostError{StatusCode: 500}, http.StatusBadGateway),
		Entry("anything else is an internal error",
			fmt.Errorf("boom"), http.StatusInternalServerError),
	)

	It("serves liveness on the root path", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)
		Expect(res.Code).To(Equal(http.StatusOK))
		Expect(res.Body.String()).To(MatchJSON(`{"ok": true}`))
	})

	It("exposes request metrics on a dedicated registry", func() {
		registry := prometheus.NewRegistry()
		server = New(Config{
			Authenticator:   &auth.SharedSecretAuthenticator{Secret: secret},
			Reconciler:      fakeReconciler,
			Logger:          lager.NewLogger("test"),
			MetricsRegistry: registry,
		})
		fakeReconciler.ReconcileReturns(&eventio.ReconcileResult{
			Outcome: eventio.OutcomeIgnored,
			EventID: 42,
		}, nil)
		post(secret, notificationBody)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)
		Expect(res.Code).To(Equal(http.StatusOK))
		Expect(res.Body.String()).To(ContainSubstring("print_billing_requests_total"))
	})
})
