package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alkautsarf/elecTrust-v2/audit"
	"github.com/alkautsarf/elecTrust-v2/testutil"
)

// captureRecorder collects audit events in emission order
type captureRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (c *captureRecorder) Record(e audit.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureRecorder) all() []audit.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]audit.Event(nil), c.events...)
}

func TestCreateElection(t *testing.T) {
	reg := New(nil, nil)

	tests := []struct {
		name       string
		election   string
		candidates []string
		eligible   []Principal
		duration   int64
		wantErr    error
	}{
		{
			name:       "valid open election",
			election:   "Board 2026",
			candidates: []string{"Alice", "Bob", "Charlie"},
			duration:   3600,
		},
		{
			name:       "valid strict election",
			election:   "Committee",
			candidates: []string{"Dana", "Eve"},
			eligible:   []Principal{"p1", "p2", "p2"},
			duration:   60,
		},
		{
			name:       "empty election name",
			election:   "",
			candidates: []string{"Alice"},
			wantErr:    ErrInvalidName,
		},
		{
			name:       "empty candidate list",
			election:   "No Candidates",
			candidates: []string{},
			wantErr:    ErrInvalidCandidateIndex,
		},
		{
			name:       "nil candidate list",
			election:   "Nil Candidates",
			candidates: nil,
			wantErr:    ErrInvalidCandidateIndex,
		},
		{
			name:       "empty candidate name",
			election:   "Bad Candidate",
			candidates: []string{"Alice", "", "Charlie"},
			wantErr:    ErrInvalidCandidateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := reg.GetElectionCount()
			index, err := reg.CreateElection(tt.election, tt.candidates, tt.eligible, tt.duration)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				if reg.GetElectionCount() != before {
					t.Errorf("Failed creation changed election count: %d -> %d", before, reg.GetElectionCount())
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateElection failed: %v", err)
			}
			if index != before {
				t.Errorf("Expected index %d (prior count), got %d", before, index)
			}
			if reg.GetElectionCount() != before+1 {
				t.Errorf("Expected count %d, got %d", before+1, reg.GetElectionCount())
			}
		})
	}
}

func TestCreateElectionAtomicValidation(t *testing.T) {
	// The first empty candidate name aborts the whole operation; no partial
	// candidate list may be observable afterwards.
	reg := New(nil, nil)

	if _, err := reg.CreateElection("Partial", []string{"Alice", "Bob", ""}, nil, 60); !errors.Is(err, ErrInvalidCandidateName) {
		t.Fatalf("Expected ErrInvalidCandidateName, got %v", err)
	}
	if reg.GetElectionCount() != 0 {
		t.Fatalf("Expected empty registry after failed creation, got %d elections", reg.GetElectionCount())
	}
	if _, err := reg.GetElectionInfo(0); !errors.Is(err, ErrElectionNotFound) {
		t.Errorf("Expected ErrElectionNotFound, got %v", err)
	}
}

func TestGetElectionInfoAndCandidates(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))
	reg := New(clock.Now, nil)

	index, err := reg.CreateElection("Snacks", []string{"Alice", "Bob", "Charlie"}, nil, 120)
	if err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}

	info, err := reg.GetElectionInfo(index)
	if err != nil {
		t.Fatalf("GetElectionInfo failed: %v", err)
	}
	if info.Name != "Snacks" {
		t.Errorf("Expected name 'Snacks', got %q", info.Name)
	}
	if !info.StartTime.Equal(clock.Now()) {
		t.Errorf("Expected start time %v, got %v", clock.Now(), info.StartTime)
	}
	if info.Duration != 120 {
		t.Errorf("Expected duration 120, got %d", info.Duration)
	}
	if info.TotalCandidates != 3 {
		t.Errorf("Expected 3 candidates, got %d", info.TotalCandidates)
	}
	if info.StrictVoters {
		t.Error("Expected strict_voters false for open election")
	}

	tests := []struct {
		name           string
		candidateIndex int
		wantName       string
		wantErr        error
	}{
		{"first candidate", 1, "Alice", nil},
		{"last candidate", 3, "Charlie", nil},
		{"index zero is the reserved sentinel", 0, "", ErrCandidateNotFound},
		{"one past the last candidate", 4, "", ErrCandidateNotFound},
		{"negative index", -1, "", ErrCandidateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, err := reg.GetCandidate(index, tt.candidateIndex)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCandidate failed: %v", err)
			}
			if cand.Name != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, cand.Name)
			}
			if cand.VoteCount != 0 {
				t.Errorf("Expected zero votes, got %d", cand.VoteCount)
			}
		})
	}

	if _, err := reg.GetElectionInfo(index + 1); !errors.Is(err, ErrElectionNotFound) {
		t.Errorf("Expected ErrElectionNotFound for out-of-range index, got %v", err)
	}
	if _, err := reg.GetElectionInfo(-1); !errors.Is(err, ErrElectionNotFound) {
		t.Errorf("Expected ErrElectionNotFound for negative index, got %v", err)
	}
}

func TestVote(t *testing.T) {
	reg := New(nil, nil)
	index, _ := reg.CreateElection("Lunch", []string{"Pizza", "Sushi"}, nil, 3600)

	if err := reg.Vote("alice", index, 1); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	cand, _ := reg.GetCandidate(index, 1)
	if cand.VoteCount != 1 {
		t.Errorf("Expected 1 vote for Pizza, got %d", cand.VoteCount)
	}
	voted, err := reg.GetHasVoted(index, "alice")
	if err != nil {
		t.Fatalf("GetHasVoted failed: %v", err)
	}
	if !voted {
		t.Error("Expected alice's hasVoted flag to be set")
	}

	// Second vote by the same voter must fail regardless of candidate
	if err := reg.Vote("alice", index, 2); !errors.Is(err, ErrHasVoted) {
		t.Fatalf("Expected ErrHasVoted, got %v", err)
	}
	for i := 1; i <= 2; i++ {
		cand, _ := reg.GetCandidate(index, i)
		want := uint64(0)
		if i == 1 {
			want = 1
		}
		if cand.VoteCount != want {
			t.Errorf("Candidate %d: expected %d votes after rejected duplicate, got %d", i, want, cand.VoteCount)
		}
	}

	// A different voter is unaffected
	if voted, _ := reg.GetHasVoted(index, "bob"); voted {
		t.Error("Expected bob's hasVoted flag to be unset")
	}
	if err := reg.Vote("bob", index, 2); err != nil {
		t.Fatalf("Vote by bob failed: %v", err)
	}
}

func TestVoteElectionNotFound(t *testing.T) {
	reg := New(nil, nil)

	// Candidate index is irrelevant when the election does not exist
	for _, candidateIndex := range []int{0, 1, 99} {
		if err := reg.Vote("alice", 0, candidateIndex); !errors.Is(err, ErrElectionNotFound) {
			t.Errorf("candidate %d: expected ErrElectionNotFound, got %v", candidateIndex, err)
		}
	}

	reg.CreateElection("Only", []string{"A"}, nil, 60)
	if err := reg.Vote("alice", 1, 1); !errors.Is(err, ErrElectionNotFound) {
		t.Errorf("Expected ErrElectionNotFound for index 1, got %v", err)
	}
	if err := reg.Vote("alice", -1, 1); !errors.Is(err, ErrElectionNotFound) {
		t.Errorf("Expected ErrElectionNotFound for index -1, got %v", err)
	}
}

func TestVoteCandidateBounds(t *testing.T) {
	reg := New(nil, nil)
	index, _ := reg.CreateElection("Bounds", []string{"A", "B", "C"}, nil, 3600)

	tests := []struct {
		name           string
		candidateIndex int
		wantErr        error
	}{
		{"index zero rejected", 0, ErrCandidateNotFound},
		{"negative index rejected", -3, ErrCandidateNotFound},
		{"last index accepted", 3, nil},
		{"one past last rejected", 4, ErrCandidateNotFound},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voter := Principal(fmt.Sprintf("voter-%d", i))
			err := reg.Vote(voter, index, tt.candidateIndex)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			// Rejected attempts must not mark the voter as having voted
			if voted, _ := reg.GetHasVoted(index, voter); voted {
				t.Error("Rejected vote set the hasVoted flag")
			}
		})
	}
}

func TestVoteStrictEligibility(t *testing.T) {
	reg := New(nil, nil)
	index, _ := reg.CreateElection("Strict", []string{"A", "B"}, []Principal{"alice", "bob"}, 3600)

	info, _ := reg.GetElectionInfo(index)
	if !info.StrictVoters {
		t.Fatal("Expected strict_voters true")
	}

	if err := reg.Vote("mallory", index, 1); !errors.Is(err, ErrUnauthorizedVoter) {
		t.Fatalf("Expected ErrUnauthorizedVoter, got %v", err)
	}
	if voted, _ := reg.GetHasVoted(index, "mallory"); voted {
		t.Error("Ineligible voter got a hasVoted flag")
	}
	cand, _ := reg.GetCandidate(index, 1)
	if cand.VoteCount != 0 {
		t.Errorf("Rejected vote changed the tally: %d", cand.VoteCount)
	}

	if err := reg.Vote("alice", index, 1); err != nil {
		t.Fatalf("Eligible voter rejected: %v", err)
	}
	if err := reg.Vote("alice", index, 2); !errors.Is(err, ErrHasVoted) {
		t.Fatalf("Expected ErrHasVoted on second vote, got %v", err)
	}
}

func TestVoteWindowBoundary(t *testing.T) {
	start := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(start)
	reg := New(clock.Now, nil)

	index, _ := reg.CreateElection("Timed", []string{"A", "B"}, nil, 60)

	// Exactly startTime + duration is still inside the window
	clock.Advance(60 * time.Second)
	if err := reg.Vote("alice", index, 1); err != nil {
		t.Fatalf("Vote at the closing instant rejected: %v", err)
	}

	// One nanosecond later the window is closed
	clock.Advance(time.Nanosecond)
	if err := reg.Vote("bob", index, 1); !errors.Is(err, ErrVotingEnd) {
		t.Fatalf("Expected ErrVotingEnd, got %v", err)
	}
	if voted, _ := reg.GetHasVoted(index, "bob"); voted {
		t.Error("Late vote set the hasVoted flag")
	}
	cand, _ := reg.GetCandidate(index, 1)
	if cand.VoteCount != 1 {
		t.Errorf("Expected tally 1 after late rejection, got %d", cand.VoteCount)
	}
}

func TestVoteZeroDurationWindow(t *testing.T) {
	start := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(start)
	reg := New(clock.Now, nil)

	// Negative durations clamp to zero: the window is the single instant
	// of creation.
	index, _ := reg.CreateElection("Instant", []string{"A"}, nil, -5)
	if err := reg.Vote("alice", index, 1); err != nil {
		t.Fatalf("Vote at the creation instant rejected: %v", err)
	}

	clock.Advance(time.Second)
	if err := reg.Vote("bob", index, 1); !errors.Is(err, ErrVotingEnd) {
		t.Fatalf("Expected ErrVotingEnd, got %v", err)
	}
}

// TestVoteErrorPrecedence pins the observable check order: election
// existence, candidate bounds, duplicate vote, window, eligibility. Each
// case violates the expected condition plus everything after it.
func TestVoteErrorPrecedence(t *testing.T) {
	start := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(start)
	reg := New(clock.Now, nil)

	index, _ := reg.CreateElection("Precedence", []string{"A", "B"}, []Principal{"alice", "bob"}, 60)
	if err := reg.Vote("alice", index, 1); err != nil {
		t.Fatalf("Setup vote failed: %v", err)
	}

	// Close the window; alice has voted, mallory is ineligible
	clock.Advance(61 * time.Second)

	tests := []struct {
		name           string
		voter          Principal
		electionIndex  int
		candidateIndex int
		wantErr        error
	}{
		{"missing election wins over bad candidate", "mallory", 7, 0, ErrElectionNotFound},
		{"candidate bounds win over duplicate, window and eligibility", "alice", index, 0, ErrCandidateNotFound},
		{"duplicate wins over window and eligibility", "alice", index, 1, ErrHasVoted},
		{"window wins over eligibility", "mallory", index, 1, ErrVotingEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := reg.Vote(tt.voter, tt.electionIndex, tt.candidateIndex); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	// With the window open again (fresh election), eligibility is the last check
	index2, _ := reg.CreateElection("Precedence2", []string{"A"}, []Principal{"alice"}, 60)
	if err := reg.Vote("mallory", index2, 1); !errors.Is(err, ErrUnauthorizedVoter) {
		t.Errorf("Expected ErrUnauthorizedVoter, got %v", err)
	}
}

func TestElectionIndependence(t *testing.T) {
	reg := New(nil, nil)

	first, _ := reg.CreateElection("First", []string{"A", "B"}, nil, 3600)
	second, _ := reg.CreateElection("Second", []string{"A", "B"}, []Principal{"alice"}, 3600)

	if err := reg.Vote("alice", first, 1); err != nil {
		t.Fatalf("Vote in first election failed: %v", err)
	}

	// Nothing leaked into the second election
	if voted, _ := reg.GetHasVoted(second, "alice"); voted {
		t.Error("hasVoted leaked across elections")
	}
	cand, _ := reg.GetCandidate(second, 1)
	if cand.VoteCount != 0 {
		t.Errorf("Vote count leaked across elections: %d", cand.VoteCount)
	}

	// alice can still vote in the second election, and only there
	if err := reg.Vote("alice", second, 2); err != nil {
		t.Fatalf("Vote in second election failed: %v", err)
	}
	if err := reg.Vote("alice", first, 2); !errors.Is(err, ErrHasVoted) {
		t.Errorf("Expected ErrHasVoted in first election, got %v", err)
	}
}

func TestReadIdempotence(t *testing.T) {
	reg := New(nil, nil)
	index, _ := reg.CreateElection("Stable", []string{"A", "B"}, nil, 3600)
	reg.Vote("alice", index, 2)

	info1, _ := reg.GetElectionInfo(index)
	cand1, _ := reg.GetCandidate(index, 2)
	voted1, _ := reg.GetHasVoted(index, "alice")

	for i := 0; i < 3; i++ {
		info2, _ := reg.GetElectionInfo(index)
		cand2, _ := reg.GetCandidate(index, 2)
		voted2, _ := reg.GetHasVoted(index, "alice")
		if info2 != info1 {
			t.Errorf("GetElectionInfo not stable: %+v vs %+v", info2, info1)
		}
		if cand2 != cand1 {
			t.Errorf("GetCandidate not stable: %+v vs %+v", cand2, cand1)
		}
		if voted2 != voted1 {
			t.Errorf("GetHasVoted not stable: %v vs %v", voted2, voted1)
		}
	}
}

func TestAuditTrail(t *testing.T) {
	start := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(start)
	rec := &captureRecorder{}
	reg := New(clock.Now, rec)

	index, _ := reg.CreateElection("Audited", []string{"Alice", "Bob"}, []Principal{"p1"}, 600)
	clock.Advance(5 * time.Second)
	if err := reg.Vote("p1", index, 2); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	// Rejected operations must not emit audit events
	reg.Vote("p1", index, 1)
	reg.Vote("intruder", index, 1)

	events := rec.all()
	if len(events) != 2 {
		t.Fatalf("Expected 2 audit events, got %d", len(events))
	}

	created := events[0]
	if created.Type != audit.TypeElectionCreated {
		t.Errorf("Expected ELECTION_CREATED first, got %s", created.Type)
	}
	if created.ElectionName != "Audited" || created.TotalCandidates != 2 || !created.StrictVoters {
		t.Errorf("Unexpected creation event payload: %+v", created)
	}
	if !created.Timestamp.Equal(start) {
		t.Errorf("Expected creation timestamp %v, got %v", start, created.Timestamp)
	}

	votedEvent := events[1]
	if votedEvent.Type != audit.TypeVoted {
		t.Errorf("Expected VOTED second, got %s", votedEvent.Type)
	}
	if votedEvent.Voter != "p1" || votedEvent.ElectionName != "Audited" || votedEvent.CandidateName != "Bob" {
		t.Errorf("Unexpected vote event payload: %+v", votedEvent)
	}
	if votedEvent.ID == created.ID || votedEvent.ID == "" {
		t.Error("Audit events must carry distinct non-empty IDs")
	}
}

func TestConcurrentVotes(t *testing.T) {
	reg := New(nil, nil)
	index, _ := reg.CreateElection("Concurrent", []string{"A", "B", "C"}, nil, 3600)

	numVoters := 50
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			voter := Principal(fmt.Sprintf("voter-%d", n))
			if err := reg.Vote(voter, index, n%3+1); err != nil {
				t.Errorf("Vote by %s failed: %v", voter, err)
			}
			// A racing duplicate from the same voter must lose
			if err := reg.Vote(voter, index, 1); !errors.Is(err, ErrHasVoted) {
				t.Errorf("Expected ErrHasVoted for duplicate by %s, got %v", voter, err)
			}
		}(i)
	}
	wg.Wait()

	var total uint64
	for i := 1; i <= 3; i++ {
		cand, err := reg.GetCandidate(index, i)
		if err != nil {
			t.Fatalf("GetCandidate failed: %v", err)
		}
		total += cand.VoteCount
	}
	if total != uint64(numVoters) {
		t.Errorf("Expected %d total votes, got %d", numVoters, total)
	}
}
