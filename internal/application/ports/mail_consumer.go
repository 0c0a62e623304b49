package ports

import "context"

type MailConsumer interface {
	Connect(dsn string) error
	Init() error
	MailWorker(ctx context.Context)
}
