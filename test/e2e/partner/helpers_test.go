package partner_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

/*
 * Shared setup for the partner hub end-to-end tests: the image is built
 * once, each test gets its own container and talks to it through the SDK.
 */

const (
	testImageName = "kidventure-partner-test:latest"

	platformToken   = "test-platform-token-12345"
	managerEmail    = "manager@sprouts.example"
	managerPassword = "Sunshine2025"
)

// relaxedRateLimits keeps bursts of test requests clear of the production
// limits.
var relaxedRateLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building partner hub Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up partner hub Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/partner/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// setupHub starts a container with relaxed rate limits and returns an SDK
// client for it.
func setupHub(t *testing.T) *partnersdk.Client {
	t.Helper()
	return startHub(t, relaxedRateLimits)
}

// setupHubWithDefaultRateLimits is for tests that check the limits.
func setupHubWithDefaultRateLimits(t *testing.T) *partnersdk.Client {
	t.Helper()
	return startHub(t, nil)
}

func startHub(t *testing.T, extraEnv map[string]string) *partnersdk.Client {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"PLATFORM_TOKEN":   platformToken,
		"PARTNER_ISSUER":   "kidventure-partner-hub",
		"PARTNER_NUM_KEYS": "1",
		"ENV":              "test",
		"LOG_LEVEL":        "info",
		"LOG_FORMAT":       "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	port, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return partnersdk.NewClient(fmt.Sprintf("http://%s:%s", host, port.Port()))
}

// onboardStudio creates a UTC organization through the platform API.
func onboardStudio(t *testing.T, client *partnersdk.Client) *partnersdk.OnboardResponse {
	t.Helper()

	org, err := client.Platform(platformToken).Onboard(t.Context(), partnersdk.OnboardRequest{
		DisplayName:      "Little Sprouts Studio",
		LegalName:        "Little Sprouts LLC",
		Timezone:         "UTC",
		CreditValueCents: 250,
		ManagerEmail:     managerEmail,
		Locations:        []partnersdk.OnboardLocation{{Name: "Main Street", Address: "1 Main St"}},
		Templates:        []partnersdk.OnboardTemplate{{Title: "Tiny Painters", DurationMinutes: 45, CreditsCost: 4}},
	})
	require.NoError(t, err, "Onboarding should succeed")
	require.NotEmpty(t, org.InvitationToken)
	return org
}

// signInManager onboards a studio, claims the manager invitation and signs
// in.
func signInManager(t *testing.T, client *partnersdk.Client) (*partnersdk.OnboardResponse, *partnersdk.Session) {
	t.Helper()

	org := onboardStudio(t, client)
	_, err := client.ClaimInvitation(t.Context(), partnersdk.ClaimInvitationRequest{
		Token:                org.InvitationToken,
		FirstName:            "Morgan",
		LastName:             "Lee",
		Password:             managerPassword,
		PasswordConfirmation: managerPassword,
	})
	require.NoError(t, err, "Claim should succeed")

	session, err := client.SignIn(t.Context(), managerEmail, managerPassword)
	require.NoError(t, err, "Sign in should succeed")
	require.True(t, session.IsManager())
	return org, session
}

func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *partnersdk.APIError
	require.ErrorAs(t, err, &apiErr, "expected an API error, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, "status for %s", apiErr.Code)
	require.Equal(t, code, apiErr.Code)
}
