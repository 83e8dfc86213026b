// +build integration

package cubejs

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/semlayer/go-cubejs/auth"
	e "github.com/semlayer/go-cubejs/errors"
	. "github.com/semlayer/go-cubejs/internal/testutil"
	"github.com/semlayer/go-cubejs/models"
	"github.com/semlayer/go-cubejs/retry"
)

var server *CubeServer

var _ = Describe("Client", func() {
	var client *Client
	var creds auth.Auth

	BeforeEach(func() {
		policy := retry.Policy{
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
			MaxAttempts:     5,
			ShouldRetry:     e.IsRetryable,
		}
		client = NewClientConfigWithLogger(TestLogger()).
			WithRetryPolicy(policy).
			NewClient()
		creds = auth.Auth{Token: server.Token, Host: server.URL()}
	})

	Describe("Load()", func() {
		It("Should poll until the query is ready", func() {
			server.EnqueueLoad(http.StatusOK, `{"error": "Continue wait"}`)
			server.EnqueueLoad(http.StatusOK, `{"error": "Continue wait"}`)
			server.EnqueueLoad(http.StatusOK, `{"data": [{"orders.count": 42}]}`)

			before := server.LoadCalls()
			result, err := client.Load(context.Background(), creds, &models.Query{Measures: []string{"orders.count"}})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Data).To(HaveLen(1))
			Expect(result.Data[0]["orders.count"]).To(Equal(float64(42)))
			Expect(server.LoadCalls() - before).To(Equal(int64(3)))
		})

		It("Should give up once the attempt budget is spent", func() {
			for i := 0; i < 5; i++ {
				server.EnqueueLoad(http.StatusBadGateway, "Bad Gateway")
			}

			before := server.LoadCalls()
			_, err := client.Load(context.Background(), creds, &models.Query{Measures: []string{"orders.count"}})
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&e.BadGatewayError{}))
			Expect(server.LoadCalls() - before).To(Equal(int64(5)))
		})

		It("Should reject an invalid token without retrying", func() {
			badCreds := auth.Auth{Token: "wrong", Host: server.URL()}

			before := server.LoadCalls()
			_, err := client.Load(context.Background(), badCreds, &models.Query{Measures: []string{"orders.count"}})
			Expect(err).To(BeAssignableToTypeOf(&e.AuthorizationError{}))
			Expect(server.LoadCalls() - before).To(Equal(int64(1)))
		})
	})

	Describe("Meta()", func() {
		It("Should list cube members", func() {
			server.SetMetaBody(`{
				"cubes": [
					{"name": "orders", "title": "Orders", "measures": [], "dimensions": [], "segments": []}
				]
			}`)

			meta, err := client.Meta(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())
			Expect(meta.Cubes).To(HaveLen(1))
			Expect(meta.Cubes[0].Name).To(Equal("orders"))
		})
	})
})

var _ = BeforeSuite(func() {
	server = NewCubeServer("integration-test-token")
})

var _ = AfterSuite(func() {
	server.Close()
})

func TestCubeClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cube client integration test suite")
}
