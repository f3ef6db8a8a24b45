package marathon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkmfoundation/site-api/internal/marathon"
	"github.com/jkmfoundation/site-api/internal/notify"
)

type mockRepo struct {
	createFn func(ctx context.Context, inq *marathon.Inquiry) error
	created  []marathon.Inquiry
}

func (m *mockRepo) Create(ctx context.Context, inq *marathon.Inquiry) error {
	if m.createFn != nil {
		return m.createFn(ctx, inq)
	}
	inq.ID = uuid.New()
	m.created = append(m.created, *inq)
	return nil
}

type recordingMailer struct {
	sent  []notify.Message
	admin []notify.Message
}

func (r *recordingMailer) Dispatch(_ context.Context, msg notify.Message) {
	r.sent = append(r.sent, msg)
}

func (r *recordingMailer) DispatchAdmin(_ context.Context, msg notify.Message) {
	r.admin = append(r.admin, msg)
}

func sampleInquiry() *marathon.Inquiry {
	return &marathon.Inquiry{
		FirstName:       "Ann",
		LastName:        "Lee",
		PhoneNumber:     "555-0199",
		Email:           "ann@example.org",
		FundraisingGoal: true,
		MarathonReason:  "Running for Joe",
		AdditionalNames: "Bo Lee",
	}
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{}
	mailer := &recordingMailer{}
	svc := marathon.NewService(repo, mailer)

	require.NoError(t, svc.Submit(context.Background(), sampleInquiry()))

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Running for Joe", repo.created[0].MarathonReason)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Marathon Inquiry Confirmation", mailer.sent[0].Subject)
	require.Len(t, mailer.admin, 1)
	assert.Contains(t, mailer.admin[0].Body, "Additional Names: Bo Lee")
}

func TestSubmit_RepeatsAreStored(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{}
	svc := marathon.NewService(repo, &recordingMailer{})

	require.NoError(t, svc.Submit(context.Background(), sampleInquiry()))
	require.NoError(t, svc.Submit(context.Background(), sampleInquiry()))

	assert.Len(t, repo.created, 2)
}

func TestSubmit_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{
		createFn: func(_ context.Context, _ *marathon.Inquiry) error {
			return errors.New("write rejected")
		},
	}
	mailer := &recordingMailer{}
	svc := marathon.NewService(repo, mailer)

	err := svc.Submit(context.Background(), sampleInquiry())

	assert.Error(t, err)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, mailer.admin)
}
