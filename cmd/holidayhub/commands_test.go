package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/holidayhub/internal/services/trivia"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
)

type CommandsTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	stateFile string
	dir       string
}

func (s *CommandsTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.dir = s.T().TempDir()
	s.stateFile = filepath.Join(s.dir, "state.yaml")
}

func (s *CommandsTestSuite) TearDownTest() {
	s.mr.Close()
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

// run executes one CLI invocation against the test redis and state file
func (s *CommandsTestSuite) run(args ...string) (string, error) {
	cmd := newRootCmd(&Config{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--redis-addr", s.mr.Addr(), "--state-file", s.stateFile}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandsTestSuite) mustRun(args ...string) string {
	out, err := s.run(args...)
	s.Require().NoError(err, out)
	return out
}

func (s *CommandsTestSuite) TestJoinWhoamiSignOut() {
	out := s.mustRun("whoami")
	s.Contains(out, "not joined")

	out = s.mustRun("join", "Mike")
	s.Contains(out, "participant id:")

	out = s.mustRun("whoami")
	s.Contains(out, "Mike (")

	s.mustRun("signout")

	out = s.mustRun("whoami")
	s.Contains(out, "not joined")
}

func (s *CommandsTestSuite) TestWhoamiDropsDeletedIdentity() {
	s.mustRun("join", "Mike")
	s.mr.FlushAll()

	out := s.mustRun("whoami")
	s.Contains(out, "no longer exists")

	out = s.mustRun("whoami")
	s.Contains(out, "not joined")
}

func (s *CommandsTestSuite) TestJoinRejectsBlockedName() {
	_, err := s.run("join", "Cassandra")
	s.Error(err)

	out := s.mustRun("whoami")
	s.Contains(out, "not joined")
}

func (s *CommandsTestSuite) TestCommandsRequireJoin() {
	_, err := s.run("elephant", "add-gift")
	s.ErrorIs(err, errNotJoined)
}

func (s *CommandsTestSuite) TestElephantFlow() {
	s.mustRun("join", "Mike")
	s.mustRun("elephant", "add-gift")
	s.mustRun("elephant", "add-gift")
	s.mustRun("elephant", "claim-host")

	out := s.mustRun("elephant", "assign")
	s.Contains(out, "assigned 2 numbers")

	out = s.mustRun("elephant", "turn", "+1")
	s.Contains(out, "current turn: 2")

	out = s.mustRun("elephant", "turn", "7")
	s.Contains(out, "current turn: 7")

	out = s.mustRun("elephant", "turn", "-10")
	s.Contains(out, "current turn: -3")

	_, err := s.run("elephant", "nuke")
	s.Error(err)

	s.mustRun("elephant", "nuke", "--yes")

	_, err = s.run("elephant", "assign")
	s.Error(err)
}

func (s *CommandsTestSuite) TestElephantHostNeedsGift() {
	s.mustRun("join", "Mike")

	_, err := s.run("elephant", "claim-host")
	s.Error(err)
}

func (s *CommandsTestSuite) TestTriviaFlow() {
	questions := filepath.Join(s.dir, "questions.yaml")
	s.Require().NoError(os.WriteFile(questions, []byte(`questions:
  - text: What do reindeer eat?
    options: [Lichen, Carrots, Cookies]
    correct_answer: Lichen
  - text: Name Santa's lead reindeer
    correct_answer: Rudolph
    bonus: true
`), 0o600))

	s.mustRun("join", "Mike")

	out := s.mustRun("trivia", "load-questions", questions)
	s.Contains(out, "loaded 2 questions")

	out = s.mustRun("trivia", "claim-host")
	s.Contains(out, "trivia is now lobby")

	out = s.mustRun("trivia", "start", "--duration", "1m")
	s.Contains(out, "trivia is now active")

	_, err := s.run("trivia", "reset")
	s.Error(err)

	out = s.mustRun("trivia", "answer", "lichen")
	s.Contains(out, "answer locked in: lichen")

	_, err = s.run("trivia", "answer", "carrots")
	s.Error(err)

	out = s.mustRun("trivia", "reveal")
	s.Contains(out, "trivia is now revealed")

	out = s.mustRun("trivia", "next")
	s.Contains(out, "trivia is now bonus_intro")

	out = s.mustRun("trivia", "force-reset")
	s.Contains(out, "trivia is now lobby")
}

func (s *CommandsTestSuite) TestLoadQuestionsRejectsCollidingIDs() {
	questions := filepath.Join(s.dir, "questions.yaml")
	s.Require().NoError(os.WriteFile(questions, []byte(`questions:
  - id: 2
    text: Explicit two
    correct_answer: a
  - text: Defaults to two
    correct_answer: b
`), 0o600))

	s.mustRun("join", "Mike")

	_, err := s.run("trivia", "load-questions", questions)
	s.ErrorIs(err, trivia.ErrDuplicateQuestion)
}

func (s *CommandsTestSuite) TestContestFlow() {
	photoPath := filepath.Join(s.dir, "board.png")
	s.Require().NoError(os.WriteFile(photoPath, []byte("png"), 0o600))

	s.mustRun("join", "Anna")
	s.mustRun("signout")
	s.mustRun("join", "Mike")

	out := s.mustRun("contest", "submit", "--type", "cheese", "--title", "Brie Board", "--photo", photoPath, "--for", "anna")
	s.Contains(out, "entry #1 submitted")
	s.Contains(out, "contest-photos/")
	s.True(strings.HasSuffix(strings.TrimSpace(out), ".png"))

	out = s.mustRun("contest", "rate", "1", "4")
	s.Contains(out, "rated #1 ★★★★☆")

	out = s.mustRun("contest", "ran-out", "#1")
	s.Contains(out, "marked #1 as ran out")

	_, err := s.run("contest", "rate", "1", "9")
	s.Error(err)

	_, err = s.run("contest", "submit", "--title", "No Photo")
	s.Error(err)

	_, err = s.run("contest", "submit", "--type", "pie", "--title", "Pie", "--photo", photoPath)
	s.Error(err)

	_, err = s.run("contest", "submit", "--title", "Ghost", "--photo", photoPath, "--for", "nobody")
	s.Error(err)
}
