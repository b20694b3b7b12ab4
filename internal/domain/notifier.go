package domain

import "context"

// Notifier sends transactional email for the lead pipeline. Delivery is
// best-effort: the pipeline logs and drops any error, it never reaches the
// caller of a submission.
type Notifier interface {
	SendContactConfirmation(ctx context.Context, to, name string) error
	SendLeadAlert(ctx context.Context, lead *Lead) error
	SendResourceAccess(ctx context.Context, to, name, resourceType string) error
	SendApplicationConfirmation(ctx context.Context, to, name, roleTitle string) error
}
