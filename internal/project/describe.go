package project

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Info summarizes the repository at the project root.
type Info struct {
	Root   string
	Branch string // empty when HEAD is detached or unborn
	Head   string // empty when the repository has no commits
}

func (i Info) String() string {
	switch {
	case i.Head == "":
		return fmt.Sprintf("%s (no commits)", i.Root)
	case i.Branch == "":
		return fmt.Sprintf("%s (detached at %.7s)", i.Root, i.Head)
	default:
		return fmt.Sprintf("%s (%s at %.7s)", i.Root, i.Branch, i.Head)
	}
}

// Describe opens the repository at root and reports its HEAD.
func Describe(root string) (Info, error) {
	info := Info{Root: root}

	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return info, fmt.Errorf("failed to open repository at %s: %w", root, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return info, nil
		}
		return info, fmt.Errorf("failed to read HEAD: %w", err)
	}

	info.Head = head.Hash().String()
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
