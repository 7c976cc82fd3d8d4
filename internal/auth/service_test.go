package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/notify"
	"github.com/rpggio/bizdesk/internal/route"
)

func testVerifier(t *testing.T) *BcryptVerifier {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewBcryptVerifier([]Admin{{Email: "Admin@Example.com", PasswordHash: string(hash)}})
}

func newTestService(t *testing.T, v Verifier, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithDelay(0)}, opts...)
	return NewService(v, NewMemoryTokenStore(), i18n.NewTranslator(i18n.English), nil, opts...)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t, testVerifier(t))
	notes := notify.NewRecorder()
	nav := route.NewRecorder(route.LoginPath)

	sess, err := svc.Login(context.Background(), Credentials{Email: "admin@example.com", Password: "admin123"}, notes, nav)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "admin@example.com", sess.Email)
	require.Equal(t, route.DashboardPath, nav.Location())
	require.Equal(t, []notify.Notification{notify.Success("Success", "Login successful")}, notes.All())

	email, err := svc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", email)

	require.NoError(t, svc.Logout(context.Background(), sess.Token, nav))
	require.Equal(t, route.LoginPath, nav.Location())
	_, err = svc.Authenticate(context.Background(), sess.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.ErrorIs(t, svc.Logout(context.Background(), sess.Token, nav), ErrInvalidToken)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc := newTestService(t, testVerifier(t))

	for _, c := range []Credentials{
		{Email: "admin@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "admin123"},
	} {
		notes := notify.NewRecorder()
		nav := route.NewRecorder(route.LoginPath)
		_, err := svc.Login(context.Background(), c, notes, nav)
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Equal(t, []notify.Notification{notify.Error("Error", "Invalid email or password")}, notes.All())
		require.False(t, nav.Redirected())
	}
}

func TestLoginTranslatesFailure(t *testing.T) {
	tokens := NewMemoryTokenStore()
	svc := NewService(testVerifier(t), tokens, i18n.NewTranslator(i18n.Portuguese), nil, WithDelay(0))
	notes := notify.NewRecorder()
	_, err := svc.Login(context.Background(), Credentials{Email: "admin@example.com", Password: "nope-nope"}, notes, route.NewRecorder("/"))
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, "Email ou senha inválidos", notes.All()[0].Description)
}

func TestLoginValidatesBeforeVerifying(t *testing.T) {
	svc := newTestService(t, testVerifier(t))
	notes := notify.NewRecorder()
	_, err := svc.Login(context.Background(), Credentials{Email: "not-an-email", Password: "123"}, notes, route.NewRecorder("/"))
	require.ErrorIs(t, err, form.ErrInvalid)

	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "Invalid email", fe["email"])
	require.Equal(t, "Password must be at least 6 characters.", fe["password"])
	require.Empty(t, notes.All())
}

type blockingVerifier struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingVerifier) Verify(context.Context, string, string) error {
	close(b.entered)
	<-b.release
	return nil
}

func TestConcurrentLoginRejected(t *testing.T) {
	v := &blockingVerifier{entered: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(t, v)
	creds := Credentials{Email: "admin@example.com", Password: "admin123"}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Login(context.Background(), creds, notify.NewRecorder(), route.NewRecorder("/"))
	}()

	<-v.entered
	_, err := svc.Login(context.Background(), creds, notify.NewRecorder(), route.NewRecorder("/"))
	require.ErrorIs(t, err, ErrLoginInProgress)

	close(v.release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestLoginDelayHonorsContext(t *testing.T) {
	svc := NewService(testVerifier(t), NewMemoryTokenStore(), i18n.NewTranslator(i18n.English), nil, WithDelay(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Login(ctx, Credentials{Email: "admin@example.com", Password: "admin123"}, notify.NewRecorder(), route.NewRecorder("/"))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.Login(context.Background(), Credentials{Email: "x", Password: "y"}, notify.NewRecorder(), route.NewRecorder("/"))
	require.ErrorIs(t, err, form.ErrInvalid, "guard is released after a cancelled attempt")
}

type countingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (c *countingObserver) ObserveLogin(outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, outcome)
}

func TestLoginObserver(t *testing.T) {
	obs := &countingObserver{}
	svc := newTestService(t, testVerifier(t), WithObserver(obs))
	ctx := context.Background()

	_, _ = svc.Login(ctx, Credentials{Email: "admin@example.com", Password: "admin123"}, notify.NewRecorder(), route.NewRecorder("/"))
	_, _ = svc.Login(ctx, Credentials{Email: "admin@example.com", Password: "badbadbad"}, notify.NewRecorder(), route.NewRecorder("/"))
	_, _ = svc.Login(ctx, Credentials{}, notify.NewRecorder(), route.NewRecorder("/"))
	require.Equal(t, []string{OutcomeSuccess, OutcomeFailure, OutcomeInvalid}, obs.outcomes)
}

func TestVerifyUnknownEmailStillCompares(t *testing.T) {
	v := testVerifier(t)
	var compared [][]byte
	v.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}
	ctx := context.Background()

	require.ErrorIs(t, v.Verify(ctx, "nobody@example.com", "admin123"), ErrInvalidCredentials)
	require.Len(t, compared, 1)
	require.Equal(t, v.dummy, compared[0])

	cost, err := bcrypt.Cost(v.dummy)
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost, cost)

	require.NoError(t, v.Verify(ctx, " admin@example.com ", "admin123"))
	require.ErrorIs(t, v.Verify(ctx, "admin@example.com", "wrong-pass"), ErrInvalidCredentials)
	require.Len(t, compared, 3)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	v := NewBcryptVerifier([]Admin{{Email: "a@b.co", PasswordHash: hash}})
	require.NoError(t, v.Verify(context.Background(), " A@B.co ", "s3cret!"))
	require.ErrorIs(t, v.Verify(context.Background(), "a@b.co", "S3cret!"), ErrInvalidCredentials)
}

func TestHashToken(t *testing.T) {
	require.Len(t, HashToken("abc"), 64)
	require.Equal(t, HashToken("abc"), HashToken("abc"))
	require.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
