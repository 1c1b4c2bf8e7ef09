package model

import "context"

// CodeSender delivers a verification code out of band. The orchestrator
// invokes it after the request record is persisted; a delivery failure is
// reported to the caller but does not roll back the pending request.
type CodeSender interface {
	SendCode(ctx context.Context, to string, kind VerificationKind, code string) error
}
