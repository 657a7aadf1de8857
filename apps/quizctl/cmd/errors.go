package cmd

import (
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
)

// exitIfSdkError inspects errors returned from the SDK and emits user-friendly
// guidance before exiting. Non-SDK errors fall back to log.Fatalf.
func exitIfSdkError(err error) {
	if err == nil {
		return
	}
	switch {
	case qerr.IsCode(err, qerr.CodeUnauthorized):
		log.Fatalf("authentication required: run 'quizctl auth login' (%v)", err)
	case qerr.IsCode(err, qerr.CodeRefreshFailed):
		log.Fatalf("session expired: run 'quizctl auth login' (%v)", err)
	case qerr.IsCode(err, qerr.CodeForbidden):
		log.Fatalf("access denied: this area needs a different role (%v)", err)
	case qerr.IsCode(err, qerr.CodeNetworkUnavailable):
		log.Fatalf("cannot reach the server: check --base-url and your connection (%v)", err)
	default:
		log.Fatalf("%v", err)
	}
}
