// Package testutil provides an in-memory storage implementation mirroring the
// guard contracts of the postgres layer, so handler-level tests can exercise
// full flows without a database.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

type FakeStorage struct {
	mu sync.Mutex

	admins    map[int64]entity.Admin
	elections map[int64]entity.Election
	questions map[int64]entity.Question
	options   map[int64]entity.Option
	voters    map[int64]entity.Voter
	answers   []entity.Answer
	tokens    map[string]storedToken

	nextID int64
}

type storedToken struct {
	subjectID int64
	role      entity.Role
	expiresAt time.Time
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		admins:    make(map[int64]entity.Admin),
		elections: make(map[int64]entity.Election),
		questions: make(map[int64]entity.Question),
		options:   make(map[int64]entity.Option),
		voters:    make(map[int64]entity.Voter),
		tokens:    make(map[string]storedToken),
	}
}

func (f *FakeStorage) nextIDLocked() int64 {
	f.nextID++
	return f.nextID
}

func (f *FakeStorage) SaveAdmin(_ context.Context, firstName, lastName, email string, passHash []byte) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.admins {
		if a.Email == email {
			return 0, repo.ErrAdminExists
		}
	}

	id := f.nextIDLocked()
	f.admins[id] = entity.Admin{ID: id, FirstName: firstName, LastName: lastName, Email: email, PassHash: passHash}
	return id, nil
}

func (f *FakeStorage) Admin(_ context.Context, id int64) (entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	admin, ok := f.admins[id]
	if !ok {
		return entity.Admin{}, repo.ErrAdminNotFound
	}
	return admin, nil
}

func (f *FakeStorage) AdminByEmail(_ context.Context, email string) (entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return entity.Admin{}, repo.ErrAdminNotFound
}

func (f *FakeStorage) UpdateAdminPassword(_ context.Context, id int64, passHash []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	admin, ok := f.admins[id]
	if !ok {
		return repo.ErrAdminNotFound
	}
	admin.PassHash = passHash
	f.admins[id] = admin
	return nil
}

func (f *FakeStorage) SaveToken(_ context.Context, subjectID int64, role entity.Role, token string, expiresAt time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokens[token] = storedToken{subjectID: subjectID, role: role, expiresAt: expiresAt}
	return f.nextIDLocked(), nil
}

func (f *FakeStorage) IsRefreshTokenValid(_ context.Context, subjectID int64, role entity.Role, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.tokens[token]
	if !ok {
		return false, nil
	}
	return stored.subjectID == subjectID && stored.role == role && stored.expiresAt.After(time.Now()), nil
}

func (f *FakeStorage) DeleteRefreshToken(_ context.Context, subjectID int64, role entity.Role, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.tokens[token]
	if !ok || stored.subjectID != subjectID || stored.role != role {
		return repo.ErrTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *FakeStorage) SaveElection(_ context.Context, name, urlString string, adminID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.elections {
		if e.URLString == urlString {
			return 0, repo.ErrURLTaken
		}
	}

	id := f.nextIDLocked()
	now := time.Now()
	f.elections[id] = entity.Election{
		ID: id, ElectionName: name, URLString: urlString, AdminID: adminID,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (f *FakeStorage) Election(_ context.Context, id int64) (entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.electionLocked(id)
}

func (f *FakeStorage) electionLocked(id int64) (entity.Election, error) {
	election, ok := f.elections[id]
	if !ok {
		return entity.Election{}, repo.ErrElectionNotFound
	}
	return election, nil
}

func (f *FakeStorage) ElectionByURL(_ context.Context, urlString string) (entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.elections {
		if e.URLString == urlString {
			return e, nil
		}
	}
	return entity.Election{}, repo.ErrElectionNotFound
}

func (f *FakeStorage) ElectionsByAdmin(_ context.Context, adminID int64) ([]entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var elections []entity.Election
	for id := int64(1); id <= f.nextID; id++ {
		if e, ok := f.elections[id]; ok && e.AdminID == adminID {
			elections = append(elections, e)
		}
	}
	return elections, nil
}

func (f *FakeStorage) LaunchElection(_ context.Context, id int64) (entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	election, err := f.electionLocked(id)
	if err != nil {
		return entity.Election{}, err
	}
	if election.Ended {
		return entity.Election{}, repo.ErrElectionEnded
	}

	var questionIDs []int64
	for qid := int64(1); qid <= f.nextID; qid++ {
		if q, ok := f.questions[qid]; ok && q.ElectionID == id {
			questionIDs = append(questionIDs, qid)
		}
	}
	if len(questionIDs) < 1 {
		return entity.Election{}, repo.ErrNoQuestions
	}

	for _, qid := range questionIDs {
		var optionCount int
		for _, o := range f.options {
			if o.QuestionID == qid {
				optionCount++
			}
		}
		if optionCount < 2 {
			return entity.Election{}, &repo.FewOptionsError{QuestionID: qid}
		}
	}

	var voterCount int
	for _, v := range f.voters {
		if v.ElectionID == id {
			voterCount++
		}
	}
	if voterCount < 1 {
		return entity.Election{}, repo.ErrNoVoters
	}

	election.Running = true
	election.UpdatedAt = time.Now()
	f.elections[id] = election
	return election, nil
}

func (f *FakeStorage) EndElection(_ context.Context, id int64) (entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	election, err := f.electionLocked(id)
	if err != nil {
		return entity.Election{}, err
	}
	if election.Ended {
		return entity.Election{}, repo.ErrElectionEnded
	}
	if !election.Running {
		return entity.Election{}, repo.ErrElectionNotRunning
	}

	election.Running = false
	election.Ended = true
	election.UpdatedAt = time.Now()
	f.elections[id] = election
	return election, nil
}

func (f *FakeStorage) SaveQuestion(_ context.Context, electionID int64, question, description string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextIDLocked()
	f.questions[id] = entity.Question{ID: id, Question: question, Description: description, ElectionID: electionID}
	return id, nil
}

func (f *FakeStorage) Question(_ context.Context, id int64) (entity.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	question, ok := f.questions[id]
	if !ok {
		return entity.Question{}, repo.ErrQuestionNotFound
	}
	return question, nil
}

func (f *FakeStorage) QuestionsByElection(_ context.Context, electionID int64) ([]entity.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var questions []entity.Question
	for id := int64(1); id <= f.nextID; id++ {
		if q, ok := f.questions[id]; ok && q.ElectionID == electionID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (f *FakeStorage) CountQuestions(_ context.Context, electionID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, q := range f.questions {
		if q.ElectionID == electionID {
			count++
		}
	}
	return count, nil
}

func (f *FakeStorage) UpdateQuestion(_ context.Context, id int64, question, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.questions[id]
	if !ok {
		return repo.ErrQuestionNotFound
	}
	q.Question = question
	q.Description = description
	f.questions[id] = q
	return nil
}

func (f *FakeStorage) DeleteQuestion(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	question, ok := f.questions[id]
	if !ok {
		return repo.ErrQuestionNotFound
	}

	var count int
	for _, q := range f.questions {
		if q.ElectionID == question.ElectionID {
			count++
		}
	}
	if count <= 1 {
		return repo.ErrLastQuestion
	}

	for oid, o := range f.options {
		if o.QuestionID == id {
			delete(f.options, oid)
		}
	}
	delete(f.questions, id)
	return nil
}

func (f *FakeStorage) SaveOption(_ context.Context, questionID int64, option string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextIDLocked()
	f.options[id] = entity.Option{ID: id, Option: option, QuestionID: questionID}
	return id, nil
}

func (f *FakeStorage) Option(_ context.Context, id int64) (entity.Option, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	option, ok := f.options[id]
	if !ok {
		return entity.Option{}, repo.ErrOptionNotFound
	}
	return option, nil
}

func (f *FakeStorage) OptionsByQuestion(_ context.Context, questionID int64) ([]entity.Option, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var options []entity.Option
	for id := int64(1); id <= f.nextID; id++ {
		if o, ok := f.options[id]; ok && o.QuestionID == questionID {
			options = append(options, o)
		}
	}
	return options, nil
}

func (f *FakeStorage) UpdateOption(_ context.Context, id int64, option string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.options[id]
	if !ok {
		return repo.ErrOptionNotFound
	}
	o.Option = option
	f.options[id] = o
	return nil
}

func (f *FakeStorage) DeleteOption(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.options[id]; !ok {
		return repo.ErrOptionNotFound
	}
	delete(f.options, id)
	return nil
}

func (f *FakeStorage) SaveVoter(_ context.Context, electionID int64, voterID string, passHash []byte) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.voters {
		if v.ElectionID == electionID && v.VoterID == voterID {
			return 0, repo.ErrVoterExists
		}
	}

	id := f.nextIDLocked()
	f.voters[id] = entity.Voter{ID: id, VoterID: voterID, PassHash: passHash, ElectionID: electionID}
	return id, nil
}

func (f *FakeStorage) Voter(_ context.Context, id int64) (entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	voter, ok := f.voters[id]
	if !ok {
		return entity.Voter{}, repo.ErrVoterNotFound
	}
	return voter, nil
}

func (f *FakeStorage) VoterInElection(_ context.Context, electionID int64, voterID string) (entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.voters {
		if v.ElectionID == electionID && v.VoterID == voterID {
			return v, nil
		}
	}
	return entity.Voter{}, repo.ErrVoterNotFound
}

func (f *FakeStorage) VotersByElection(_ context.Context, electionID int64) ([]entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var voters []entity.Voter
	for id := int64(1); id <= f.nextID; id++ {
		if v, ok := f.voters[id]; ok && v.ElectionID == electionID {
			voters = append(voters, v)
		}
	}
	return voters, nil
}

func (f *FakeStorage) CountVoters(_ context.Context, electionID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, v := range f.voters {
		if v.ElectionID == electionID {
			count++
		}
	}
	return count, nil
}

func (f *FakeStorage) DeleteVoter(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	voter, ok := f.voters[id]
	if !ok {
		return repo.ErrVoterNotFound
	}
	if voter.Voted {
		return repo.ErrVoterHasVoted
	}

	var count int
	for _, v := range f.voters {
		if v.ElectionID == voter.ElectionID {
			count++
		}
	}
	if count <= 1 {
		return repo.ErrLastVoter
	}

	delete(f.voters, id)
	return nil
}

func (f *FakeStorage) UpdateVoterPassword(_ context.Context, id int64, passHash []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	voter, ok := f.voters[id]
	if !ok {
		return repo.ErrVoterNotFound
	}
	voter.PassHash = passHash
	f.voters[id] = voter
	return nil
}

func (f *FakeStorage) SaveAnswers(_ context.Context, voterID, electionID int64, selections []entity.Selection) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	voter, ok := f.voters[voterID]
	if !ok {
		return repo.ErrVoterNotFound
	}
	if voter.Voted {
		return repo.ErrAlreadyVoted
	}

	now := time.Now()
	for _, sel := range selections {
		f.answers = append(f.answers, entity.Answer{
			ID: f.nextIDLocked(), VoterID: voterID, ElectionID: electionID,
			QuestionID: sel.QuestionID, OptionID: sel.OptionID, CreatedAt: now,
		})
	}

	voter.Voted = true
	f.voters[voterID] = voter
	return nil
}

func (f *FakeStorage) AnswerCounts(_ context.Context, electionID int64) (map[int64]map[int64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[int64]map[int64]int64)
	for _, a := range f.answers {
		if a.ElectionID != electionID {
			continue
		}
		if counts[a.QuestionID] == nil {
			counts[a.QuestionID] = make(map[int64]int64)
		}
		counts[a.QuestionID][a.OptionID]++
	}
	return counts, nil
}
