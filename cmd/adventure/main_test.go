package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

type CommandTestSuite struct {
	suite.Suite
	manorPath string
	mr        *miniredis.Miniredis
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.manorPath = filepath.Join("..", "..", "data", "worlds", "manor.yaml")
	s.mr = miniredis.RunT(s.T())
}

// run executes the command tree with args and stdin, returning stdout
func (s *CommandTestSuite) run(stdin string, args ...string) (string, error) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func (s *CommandTestSuite) TestValidateManor() {
	out, err := s.run("", "validate", s.manorPath)
	s.Require().NoError(err)
	s.Contains(out, `"The Quiet Manor", 3 rooms, 7 objects, 4 doors`)
}

func (s *CommandTestSuite) TestValidateReportsProblems() {
	path := filepath.Join(s.T().TempDir(), "broken.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
rooms:
  - slug: hall
    items: [whistle]
objects:
  - slug: whistle
    can_use: true
    use_alone: true
doors:
  - slug: hatch
player:
  start_room: hall
`), 0o600))

	out, err := s.run("", "validate", s.manorPath, path)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	s.Contains(out, "ok "+s.manorPath)
	s.Contains(out, "FAIL "+path)
	s.Contains(out, "  doors[0].paired_room: DOOR_UNPAIRED: hatch does not lead anywhere")
	s.Contains(out, "  objects[0]: SOLO_USE_UNDEFINED: whistle can be used alone but has no room to be used in")
}

func (s *CommandTestSuite) TestValidateLenientPolicy() {
	path := filepath.Join(s.T().TempDir(), "whistle.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
rooms:
  - slug: hall
objects:
  - slug: whistle
    can_use: true
    use_alone: true
player:
  start_room: hall
  inventory: [whistle]
`), 0o600))

	_, err := s.run("", "validate", path)
	s.Error(err)

	_, err = s.run("", "validate", "--solo-use-policy", "lenient", path)
	s.NoError(err)
}

func (s *CommandTestSuite) TestPolicyIgnoresCase() {
	out, err := s.run("quit\n", "play", "--content", s.manorPath, "--solo-use-policy", "Lenient")
	s.Require().NoError(err)
	s.Contains(out, "You leave after 2 turns.")
}

func (s *CommandTestSuite) TestPlayFromFile() {
	out, err := s.run("take key\nuse key with gate\ngo gate\nquit\n",
		"play", "--content", s.manorPath, "--name", "Ada")
	s.Require().NoError(err)

	s.Contains(out, "The Quiet Manor")
	s.Contains(out, "You put the key into your bag.")
	s.Contains(out, "The key grinds in the lock and the gate swings open.")
	s.Contains(out, "Narrow steps lead down into a cold, dark cellar.")
	s.Contains(out, "You leave after 5 turns.")
}

func (s *CommandTestSuite) TestPlayShowsDeltas() {
	out, err := s.run("take key\n", "play", "--content", s.manorPath, "--deltas")
	s.Require().NoError(err)
	s.Contains(out, "  * moved key: room:hall -> player")
}

func (s *CommandTestSuite) TestPublishListPlayDelete() {
	redisArgs := []string{"--redis-addr", s.mr.Addr(), "--world", "manor"}

	out, err := s.run("", append([]string{"publish", s.manorPath}, redisArgs...)...)
	s.Require().NoError(err)
	s.Contains(out, "published "+s.manorPath+" as manor")

	out, err = s.run("", append([]string{"worlds", "list"}, redisArgs...)...)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(out, "manor\tThe Quiet Manor\t"))

	out, err = s.run("look\n", append([]string{"play", "--source", "redis", "--name", "Ada"}, redisArgs...)...)
	s.Require().NoError(err)
	s.Contains(out, "The front door thuds shut behind you.")

	out, err = s.run("", append([]string{"worlds", "delete", "manor"}, redisArgs...)...)
	s.Require().NoError(err)
	s.Contains(out, "deleted manor")

	_, err = s.run("", append([]string{"play", "--source", "redis"}, redisArgs...)...)
	s.True(errors.IsNotFound(err))
}

func (s *CommandTestSuite) TestPublishRejectsInvalidWorld() {
	path := filepath.Join(s.T().TempDir(), "broken.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("rooms:\n  - slug: hall\nplayer:\n  start_room: attic\n"), 0o600))

	_, err := s.run("", "publish", path, "--redis-addr", s.mr.Addr())
	s.Require().Error(err)
	s.False(s.mr.Exists("world:manor"))
}

func (s *CommandTestSuite) TestRedisDown() {
	addr := s.mr.Addr()
	s.mr.Close()

	_, err := s.run("", "worlds", "list", "--redis-addr", addr)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *CommandTestSuite) TestBadSettings() {
	_, err := s.run("", "play", "--source", "ftp")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
