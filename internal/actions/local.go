package actions

import (
	"path/filepath"

	"gbdev.dev/gbdev/internal/fsutil"
	"gbdev.dev/gbdev/internal/intent"
	"gbdev.dev/gbdev/internal/runtime"
)

// ReportPathAction prints the project root.
func ReportPathAction(ec *runtime.Context) error {
	ec.Splog.Print(ec.Root)
	return nil
}

// LinkAction creates the requested symlink unless the destination exists.
// A relative destination is taken from the project root; the link target is
// written exactly as given.
func LinkAction(ec *runtime.Context, opts intent.Link) error {
	dest := opts.Destination
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(ec.Root, dest)
	}

	created, err := fsutil.EnsureLink(fsutil.LinkRequest{
		Base:        opts.Base,
		Name:        opts.Source,
		Destination: dest,
	})
	if err != nil {
		return err
	}
	if created {
		ec.Splog.Debug("linked %s -> %s", dest, filepath.Join(opts.Base, opts.Source))
	} else {
		ec.Splog.Debug("%s already exists, leaving it alone", dest)
	}
	return nil
}
