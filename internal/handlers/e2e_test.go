package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapp "github.com/openvote/election-backend/internal/app/http"
	"github.com/openvote/election-backend/internal/handlers"
	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services"
	"github.com/openvote/election-backend/internal/testutil"
)

const testSecret = "e2e-test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *testutil.FakeStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := testutil.NewFakeStorage()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	accounts := services.NewAccounts(log, storage, storage, storage, storage, testSecret, time.Minute, time.Hour)
	elections := services.NewElectionAdmin(log, storage, storage, storage, storage)
	voting := services.NewVoting(log, storage, storage, storage, storage, storage)

	app := httpapp.NewApp(
		log, 0,
		handlers.NewAccountsHandler(accounts),
		handlers.NewElectionHandler(elections, voting),
		handlers.NewVotingHandler(voting),
		middleware.NewAuthMiddleware(testSecret),
	)
	return app.Engine(), storage
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func registerAdmin(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      email,
		"password":   "password123",
	})
	require.Equal(t, http.StatusCreated, code)
	return resp["access_token"].(string)
}

func createElection(t *testing.T, engine *gin.Engine, token, name, url string) int64 {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost, "/api/elections", token, gin.H{
		"election_name": name,
		"url_string":    url,
	})
	require.Equal(t, http.StatusCreated, code)
	return int64(resp["election_id"].(float64))
}

func addQuestion(t *testing.T, engine *gin.Engine, token string, electionID int64, question string) int64 {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/questions", electionID), token, gin.H{"question": question})
	require.Equal(t, http.StatusCreated, code)
	return int64(resp["question_id"].(float64))
}

func addOption(t *testing.T, engine *gin.Engine, token string, electionID, questionID int64, option string) int64 {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/questions/%d/options", electionID, questionID), token, gin.H{"option": option})
	require.Equal(t, http.StatusCreated, code)
	return int64(resp["option_id"].(float64))
}

func addVoter(t *testing.T, engine *gin.Engine, token string, electionID int64, voterID string) int64 {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/voters", electionID), token, gin.H{
			"voter_id": voterID,
			"password": "voterpass123",
		})
	require.Equal(t, http.StatusCreated, code)
	return int64(resp["voter_id"].(float64))
}

func loginVoter(t *testing.T, engine *gin.Engine, url, voterID string) string {
	t.Helper()

	code, resp := doJSON(t, engine, http.MethodPost, "/api/e/"+url+"/login", "", gin.H{
		"voter_id": voterID,
		"password": "voterpass123",
	})
	require.Equal(t, http.StatusOK, code)
	return resp["access_token"].(string)
}

// setupLaunchable builds a draft election that satisfies every launch
// precondition: one question, two options, one voter.
func setupLaunchable(t *testing.T, engine *gin.Engine, token string) (electionID, questionID int64) {
	t.Helper()

	electionID = createElection(t, engine, token, "Board Election", "board")
	questionID = addQuestion(t, engine, token, electionID, "Who should chair the board?")
	addOption(t, engine, token, electionID, questionID, "Alice")
	addOption(t, engine, token, electionID, questionID, "Bob")
	addVoter(t, engine, token, electionID, "voter1")
	return electionID, questionID
}

func TestFullElectionFlow(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")

	electionID := createElection(t, engine, admin, "Club Officers 2026", "club26")
	q1 := addQuestion(t, engine, admin, electionID, "Who should be president?")
	o1a := addOption(t, engine, admin, electionID, q1, "Alice")
	o1b := addOption(t, engine, admin, electionID, q1, "Bob")
	q2 := addQuestion(t, engine, admin, electionID, "Who should be treasurer?")
	o2a := addOption(t, engine, admin, electionID, q2, "Carol")
	addOption(t, engine, admin, electionID, q2, "Dave")

	addVoter(t, engine, admin, electionID, "voter1")
	addVoter(t, engine, admin, electionID, "voter2")

	// Preview passes once preconditions hold.
	code, _ := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/elections/%d/preview", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	election := resp["election"].(map[string]any)
	assert.Equal(t, true, election["Running"])

	// Voter one votes.
	voter1 := loginVoter(t, engine, "club26", "voter1")

	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote", voter1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["ballot"], 2)

	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voter1, gin.H{
		"answers": map[string]int64{
			fmt.Sprint(q1): o1a,
			fmt.Sprint(q2): o2a,
		},
	})
	require.Equal(t, http.StatusOK, code)

	// Results are pending while the election runs.
	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote/results", voter1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["ended"])
	assert.Nil(t, resp["tallies"])

	// A second submission is turned away.
	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voter1, gin.H{
		"answers": map[string]int64{
			fmt.Sprint(q1): o1b,
			fmt.Sprint(q2): o2a,
		},
	})
	require.Equal(t, http.StatusFound, code)

	// Voter two votes for the other candidate.
	voter2 := loginVoter(t, engine, "club26", "voter2")
	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voter2, gin.H{
		"answers": map[string]int64{
			fmt.Sprint(q1): o1b,
			fmt.Sprint(q2): o2a,
		},
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/end", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// Tallies are visible to voters once ended.
	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote/results", voter1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ended"])

	tallies := resp["tallies"].([]any)
	require.Len(t, tallies, 2)

	first := tallies[0].(map[string]any)
	counts := map[string]float64{}
	for _, oc := range first["Options"].([]any) {
		entry := oc.(map[string]any)
		option := entry["Option"].(map[string]any)
		counts[option["Option"].(string)] = entry["Votes"].(float64)
	}
	assert.Equal(t, float64(1), counts["Alice"])
	assert.Equal(t, float64(1), counts["Bob"])

	// Admin sees the same tallies.
	code, resp = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/elections/%d/results", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ended"])
}

func TestLaunchPreconditionRouting(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")

	electionID := createElection(t, engine, admin, "Board Election", "board")

	// No questions: routed to the questions page.
	code, resp := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, fmt.Sprintf("/elections/%d/questions", electionID), resp["redirect"])

	// A question short on options: routed to that question.
	questionID := addQuestion(t, engine, admin, electionID, "Who should chair the board?")
	addOption(t, engine, admin, electionID, questionID, "Alice")

	code, resp = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, fmt.Sprintf("/elections/%d/questions/%d", electionID, questionID), resp["redirect"])

	// No voters: routed to the roster.
	addOption(t, engine, admin, electionID, questionID, "Bob")

	code, resp = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, fmt.Sprintf("/elections/%d/voters", electionID), resp["redirect"])

	// All preconditions met.
	addVoter(t, engine, admin, electionID, "voter1")
	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestStructuralMutationsLockedAfterLaunch(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")
	electionID, questionID := setupLaunchable(t, engine, admin)

	code, _ := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/questions", electionID), admin, gin.H{"question": "Another question here?"})
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, fmt.Sprintf("/elections/%d", electionID), resp["redirect"])

	code, _ = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/elections/%d/questions/%d", electionID, questionID), admin, nil)
	require.Equal(t, http.StatusFound, code)

	code, _ = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/voters", electionID), admin, gin.H{"voter_id": "late", "password": "voterpass123"})
	require.Equal(t, http.StatusFound, code)

	// Ending locks everything for good.
	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/end", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusFound, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/end", electionID), admin, nil)
	require.Equal(t, http.StatusFound, code)
}

func TestDeletionGuards(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")

	electionID := createElection(t, engine, admin, "Board Election", "board")
	questionID := addQuestion(t, engine, admin, electionID, "Who should chair the board?")
	optionID := addOption(t, engine, admin, electionID, questionID, "Alice")
	addOption(t, engine, admin, electionID, questionID, "Bob")
	voterID := addVoter(t, engine, admin, electionID, "voter1")

	// Deleting the last question is a soft failure.
	code, resp := doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/elections/%d/questions/%d", electionID, questionID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])

	// Options have no floor: dropping below two is allowed.
	code, resp = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/elections/%d/questions/%d/options/%d", electionID, questionID, optionID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])

	// Deleting the last voter is a soft failure.
	code, resp = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/elections/%d/voters/%d", electionID, voterID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])

	// A second question makes the first deletable again.
	secondQuestion := addQuestion(t, engine, admin, electionID, "Who should be treasurer?")
	code, resp = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/elections/%d/questions/%d", electionID, secondQuestion), admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
}

func TestVotedVoterCannotBeDeleted(t *testing.T) {
	engine, storage := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")
	electionID, questionID := setupLaunchable(t, engine, admin)
	voterRowID := addVoter(t, engine, admin, electionID, "voter2")

	code, _ := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	voterToken := loginVoter(t, engine, "board", "voter2")
	code, resp := doJSON(t, engine, http.MethodGet, "/api/vote", voterToken, nil)
	require.Equal(t, http.StatusOK, code)

	ballot := resp["ballot"].([]any)
	options := ballot[0].(map[string]any)["Options"].([]any)
	optionID := int64(options[0].(map[string]any)["ID"].(float64))

	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voterToken, gin.H{
		"answers": map[string]int64{fmt.Sprint(questionID): optionID},
	})
	require.Equal(t, http.StatusOK, code)

	// Roster mutations are locked outside of draft, so the voted guard sits
	// in the storage contract.
	err := storage.DeleteVoter(context.Background(), voterRowID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrVoterHasVoted)
}

func TestOwnershipIsNotFound(t *testing.T) {
	engine, _ := newTestServer(t)
	alice := registerAdmin(t, engine, "alice@example.com")
	mallory := registerAdmin(t, engine, "mallory@example.com")

	electionID := createElection(t, engine, alice, "Board Election", "board")

	code, _ := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/elections/%d", electionID), mallory, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/questions", electionID), mallory, gin.H{"question": "Hijacked question?"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), mallory, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// The owner still sees it.
	code, _ = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/elections/%d", electionID), alice, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCrossRoleRedirects(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")
	electionID, _ := setupLaunchable(t, engine, admin)

	code, _ := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	voterToken := loginVoter(t, engine, "board", "voter1")

	// Voter on an admin page is sent home, not told the page exists.
	code, resp := doJSON(t, engine, http.MethodGet, "/api/elections", voterToken, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/vote", resp["redirect"])

	// Admin on the voting page goes back to the dashboard.
	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote", admin, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/elections", resp["redirect"])

	// No token at all is unauthorized.
	code, _ = doJSON(t, engine, http.MethodGet, "/api/elections", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestVoterLoginVisibility(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")
	electionID, _ := setupLaunchable(t, engine, admin)

	// Draft elections are indistinguishable from missing ones.
	code, _ := doJSON(t, engine, http.MethodPost, "/api/e/board/login", "", gin.H{
		"voter_id": "voter1",
		"password": "voterpass123",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, engine, http.MethodPost, "/api/e/missing/login", "", gin.H{
		"voter_id": "voter1",
		"password": "voterpass123",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// Wrong password after launch is a 401, not a 404.
	code, _ = doJSON(t, engine, http.MethodPost, "/api/e/board/login", "", gin.H{
		"voter_id": "voter1",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	loginVoter(t, engine, "board", "voter1")

	// Once ended, the login page points at results and still issues tokens.
	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/end", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, engine, http.MethodPost, "/api/e/board/login", "", gin.H{
		"voter_id": "voter1",
		"password": "voterpass123",
	})
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/vote/results", resp["redirect"])
	assert.NotEmpty(t, resp["access_token"])
}

func TestResultsReachableAfterEnd(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")
	electionID, questionID := setupLaunchable(t, engine, admin)
	addVoter(t, engine, admin, electionID, "latecomer")

	code, _ := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// One vote lands before the end.
	voter1 := loginVoter(t, engine, "board", "voter1")
	code, resp := doJSON(t, engine, http.MethodGet, "/api/vote", voter1, nil)
	require.Equal(t, http.StatusOK, code)

	ballot := resp["ballot"].([]any)
	options := ballot[0].(map[string]any)["Options"].([]any)
	optionID := int64(options[0].(map[string]any)["ID"].(float64))

	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voter1, gin.H{
		"answers": map[string]int64{fmt.Sprint(questionID): optionID},
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/end", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// The latecomer's first login happens after the end; results must still
	// be reachable with the token issued there.
	code, resp = doJSON(t, engine, http.MethodPost, "/api/e/board/login", "", gin.H{
		"voter_id": "latecomer",
		"password": "voterpass123",
	})
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/vote/results", resp["redirect"])
	token := resp["access_token"].(string)

	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote/results", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ended"])
	require.NotEmpty(t, resp["tallies"])

	// The ballot itself stays closed.
	code, resp = doJSON(t, engine, http.MethodGet, "/api/vote", token, nil)
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/vote/results", resp["redirect"])
}

func TestCastVoteRequiresEveryQuestion(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")

	electionID := createElection(t, engine, admin, "Board Election", "board")
	q1 := addQuestion(t, engine, admin, electionID, "Who should be president?")
	o1 := addOption(t, engine, admin, electionID, q1, "Alice")
	addOption(t, engine, admin, electionID, q1, "Bob")
	q2 := addQuestion(t, engine, admin, electionID, "Who should be treasurer?")
	addOption(t, engine, admin, electionID, q2, "Carol")
	addOption(t, engine, admin, electionID, q2, "Dave")
	addVoter(t, engine, admin, electionID, "voter1")

	code, _ := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/elections/%d/launch", electionID), admin, nil)
	require.Equal(t, http.StatusOK, code)

	voterToken := loginVoter(t, engine, "board", "voter1")

	code, _ = doJSON(t, engine, http.MethodPost, "/api/vote", voterToken, gin.H{
		"answers": map[string]int64{fmt.Sprint(q1): o1},
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// The ballot is still live after the failed submission.
	code, _ = doJSON(t, engine, http.MethodGet, "/api/vote", voterToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestValidationMessages(t *testing.T) {
	engine, _ := newTestServer(t)
	admin := registerAdmin(t, engine, "grace@example.com")

	code, resp := doJSON(t, engine, http.MethodPost, "/api/elections", admin, gin.H{
		"election_name": "abcd",
		"url_string":    "board",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["error"], "at least 5")

	code, resp = doJSON(t, engine, http.MethodPost, "/api/elections", admin, gin.H{
		"election_name": "Board Election",
		"url_string":    "has space",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["error"], "spaces")

	electionID := createElection(t, engine, admin, "Board Election", "board")

	code, resp = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/elections/%d/questions", electionID), admin, gin.H{"question": "Who?"})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["error"], "at least 5")

	// Duplicate slug is a conflict.
	code, _ = doJSON(t, engine, http.MethodPost, "/api/elections", admin, gin.H{
		"election_name": "Second Election",
		"url_string":    "board",
	})
	assert.Equal(t, http.StatusConflict, code)
}
