package gitstate

import (
	"github.com/go-git/go-git/v5"
)

// State describes the repository containing the working directory.
type State struct {
	Branch string
	Dirty  bool
}

// Get returns the git state for cwd, or nil when cwd is not inside a
// repository, HEAD is unborn or detached, or the lookup fails for any
// reason. The git segment simply goes missing; nothing here is fatal.
func Get(cwd string) *State {
	repo, err := git.PlainOpenWithOptions(cwd, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil
	}

	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return nil
	}

	st := &State{Branch: head.Name().Short()}
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			st.Dirty = !status.IsClean()
		}
	}
	return st
}
