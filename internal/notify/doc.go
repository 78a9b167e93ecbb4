// Package notify turns a resolved request into macOS notification surfaces.
//
// Every surface is driven by an external program: osascript for notifications and
// dialogs, afplay for sounds, say for speech. Scripts are assembled from a template
// whose fields have all been passed through Sanitize exactly once, so user text can
// never terminate an AppleScript string literal early.
//
// # Modes
//
//   - Notification: one synchronous osascript call; its failure is the invocation's failure.
//   - Alert: sound playback and the dialog are started detached and never waited on.
//     The "Go to Window" follow-up runs inside the dialog's own script.
//   - Sounds: lists the system sound catalog.
//
// # Usage
//
//	d := notify.NewDispatcher(notify.NewExecutor(), notify.NewSoundCatalog(dir, ".aiff"))
//	if err := d.Dispatch(ctx, req); err != nil {
//		var de *notify.DispatchError
//		...
//	}
package notify
