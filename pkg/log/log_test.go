package log_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechiko/iccinspect/pkg/log"
)

type fakeLogger struct {
	printfCalls int
	lastFormat  string
}

func (f *fakeLogger) Printf(format string, args ...interface{}) {
	f.printfCalls++
	f.lastFormat = format
}
func (f *fakeLogger) Println(args ...interface{})               {}
func (f *fakeLogger) Fatalf(format string, args ...interface{}) {}
func (f *fakeLogger) Fatalln(args ...interface{})               {}

func TestLoggerNoopUntilSet(t *testing.T) {
	log.DisableLoggers()
	require.NotPanics(t, func() { log.Info.Printf("hello %d", 1) })
}

func TestSetInfoLoggerRoutesCalls(t *testing.T) {
	defer log.DisableLoggers()

	f := &fakeLogger{}
	log.SetInfoLogger(f)
	log.Info.Printf("count=%d", 3)

	require.Equal(t, 1, f.printfCalls)
	require.Equal(t, "count=%d", f.lastFormat)
}

func TestDisableLoggersClearsAll(t *testing.T) {
	log.SetVerboseLoggers()
	log.DisableLoggers()

	require.NotPanics(t, func() {
		log.Debug.Println("x")
		log.Info.Println("x")
		log.Trace.Println("x")
	})
}
