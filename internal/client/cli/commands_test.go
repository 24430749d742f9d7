package cli

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkinBody = `{"id":"c1","userId":"u1","mood":4,"stress":2,"sleep":5,"notes":"calm day","tags":["work"],"createdAt":"2024-05-01"}`

func TestLogin_StoresSession(t *testing.T) {
	ta := newTestApp(t, "ann@example.com\n")
	stubPassword(t, "pw")
	ta.reply(http.MethodPost, "/api/v1/auth/login", http.StatusOK,
		`{"success":true,"data":{"token":"t1","userId":"u1","email":"ann@example.com","name":"Ann"}}`)

	require.NoError(t, ta.Login(context.Background(), nil))

	assert.True(t, ta.isLoggedIn())
	tok, err := ta.sess.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)
	assert.Contains(t, ta.out.String(), "Login successful")
}

func TestLogin_FailureIsTranslated(t *testing.T) {
	ta := newTestApp(t, "ann@example.com\nlogin\nann@example.com\nexit\n")
	stubPassword(t, "bad", "bad")
	ta.reply(http.MethodPost, "/api/v1/auth/login", http.StatusUnauthorized,
		`{"success":false,"message":"Invalid credentials"}`)

	err := ta.Login(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, ta.isLoggedIn())

	runREPL(context.Background(), ta.App, ta.getStatus, ta.reader, ta.out)
	assert.Contains(t, ta.out.String(), "Error: Incorrect email or password.")
}

func TestRegister(t *testing.T) {
	ta := newTestApp(t, "Ann\nann@example.com\n")
	stubPassword(t, "pw")
	ta.reply(http.MethodPost, "/api/v1/auth/register", http.StatusCreated,
		`{"token":"t1","userId":"u1","email":"ann@example.com","name":"Ann"}`)

	require.NoError(t, ta.Register(context.Background(), nil))
	assert.Contains(t, ta.out.String(), "Welcome, Ann!")
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodPost, "/api/v1/auth/logout", http.StatusInternalServerError, `{}`)

	require.NoError(t, ta.Logout(context.Background(), nil))
	assert.False(t, ta.isLoggedIn())
	keys, err := ta.store.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestDeleteAccount_NeedsConfirmation(t *testing.T) {
	ta := newTestApp(t, "n\n")
	ta.signIn(t)

	err := ta.DeleteAccount(context.Background(), nil)
	assert.ErrorIs(t, err, errNotConfirmed)
	assert.True(t, ta.isLoggedIn())
}

func TestCheckin_SendsScoresNotesAndTags(t *testing.T) {
	ta := newTestApp(t, "4\n2\n5\ncalm day\n\nwork, work ,\n")
	ta.signIn(t)
	var got string
	ta.router.HandleFunc("/api/v1/checkins", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(checkinBody))
	}).Methods(http.MethodPost)

	require.NoError(t, ta.Checkin(context.Background(), nil))
	assert.JSONEq(t, `{"mood":4,"stress":2,"sleep":5,"notes":"calm day","tags":["work"]}`, got)
	assert.Contains(t, ta.out.String(), "Check-in c1 saved")
}

func TestHistory_PurgesCachedDomainData(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ctx := context.Background()
	require.NoError(t, ta.store.Set(ctx, testPrefix+"report_cache", "{}"))
	ta.reply(http.MethodGet, "/api/v1/checkins", http.StatusOK,
		`{"data":[`+checkinBody+`],"page":2,"pageSize":10,"totalCount":11,"totalPages":2}`)

	require.NoError(t, ta.History(ctx, []string{"2"}))

	_, ok, err := ta.store.Get(ctx, testPrefix+"report_cache")
	require.NoError(t, err)
	assert.False(t, ok)
	tok, err := ta.sess.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)

	out := ta.out.String()
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "Page 2 of 2 (11 total)")
}

func TestHistory_BadPage(t *testing.T) {
	ta := newTestApp(t, "")
	assert.ErrorIs(t, ta.History(context.Background(), []string{"zero"}), errUsage)
	assert.ErrorIs(t, ta.History(context.Background(), []string{"1", "2"}), errUsage)
}

func TestShowAndDeleteCheckin(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodGet, "/api/v1/checkins/c1", http.StatusOK, checkinBody)
	ta.reply(http.MethodDelete, "/api/v1/checkins/c1", http.StatusNoContent, "")
	ctx := context.Background()

	require.NoError(t, ta.ShowCheckin(ctx, []string{"c1"}))
	assert.Contains(t, ta.out.String(), "Notes:  calm day")

	assert.ErrorIs(t, ta.ShowCheckin(ctx, []string{"c2"}), errNotFound)
	assert.ErrorIs(t, ta.ShowCheckin(ctx, nil), errUsage)

	require.NoError(t, ta.DeleteCheckin(ctx, []string{"c1"}))
	assert.ErrorIs(t, ta.DeleteCheckin(ctx, []string{"c2"}), errNotFound)
}

func TestTrends_NotEnoughData(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodGet, "/api/v1/insights/trends", http.StatusInternalServerError,
		`{"success":false,"errors":["Sequence contains no elements"]}`)

	require.NoError(t, ta.Trends(context.Background(), nil))
	assert.Contains(t, ta.out.String(), "Not enough check-ins yet")

	assert.ErrorIs(t, ta.Trends(context.Background(), []string{"decade"}), errUsage)
}

func TestWeekly_ValidatesDate(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodGet, "/api/v1/reports/weekly", http.StatusOK,
		`{"userId":"u1","weekStart":"2024-05-06","weekEnd":"2024-05-12","averages":{"mood":3.5,"stress":2,"sleep":4}}`)

	assert.ErrorIs(t, ta.Weekly(context.Background(), []string{"06/05/2024"}), errUsage)
	require.NoError(t, ta.Weekly(context.Background(), []string{"2024-05-06"}))
	assert.Contains(t, ta.out.String(), "Averages: mood 3.5, stress 2.0, sleep 4.0")
}

func TestToggleReminder(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodGet, "/api/v1/reminders", http.StatusOK,
		`[{"id":"r1","title":"Check in","time":"21:00","daysOfWeek":[1],"enabled":true}]`)
	var body string
	ta.router.HandleFunc("/api/v1/reminders/r1", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		_, _ = w.Write([]byte(`{"id":"r1","enabled":false}`))
	}).Methods(http.MethodPut)

	require.NoError(t, ta.ToggleReminder(context.Background(), []string{"r1"}))
	assert.JSONEq(t, `{"enabled":false}`, body)
	assert.Contains(t, ta.out.String(), "Reminder disabled")

	assert.ErrorIs(t, ta.ToggleReminder(context.Background(), []string{"r9"}), errNotFound)
}

func TestParseDays(t *testing.T) {
	days, err := parseDays("")
	require.NoError(t, err)
	assert.Len(t, days, 7)

	days, err = parseDays("1, 3,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, days)
	assert.Equal(t, "Mon,Wed,Fri", formatDays(days))

	_, err = parseDays("7")
	require.Error(t, err)
}

func TestAchievements_UnlockedFirst(t *testing.T) {
	ta := newTestApp(t, "")
	ta.signIn(t)
	ta.reply(http.MethodGet, "/api/v1/achievements", http.StatusOK,
		`[{"id":"a2","title":"Ten days","category":"streak","progress":40},{"id":"a1","title":"First step","category":"start","unlockedAt":"2024-05-01","progress":100}]`)

	require.NoError(t, ta.Achievements(context.Background(), nil))
	out := ta.out.String()
	assert.Less(t, strings.Index(out, "First step"), strings.Index(out, "Ten days"))
	assert.Contains(t, out, "40%")
}
