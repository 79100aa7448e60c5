package match_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/matchday-club/predictor/integration_tests/testutils"
)

var env *testutils.TestEnvironment

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	env, err = testutils.NewTestEnvironment(ctx)
	if err != nil {
		log.Fatalf("failed to set up test environment: %v", err)
	}

	code := m.Run()
	env.Teardown(ctx)
	os.Exit(code)
}
