// Package upload builds multipart/form-data bodies for the drops API,
// with MIME detection for files and optional progress reporting.
//
// # Building a Form
//
// Fields and files are written in the order they are added:
//
//	icon, err := upload.FromPath("icon.png")
//	form := upload.NewForm()
//	form.AddFile("icon", icon)
//	form.AddField("name", "Foo")
//	body, contentType, err := form.Encode(ctx, upload.WithProgress(logger))
//
// Most callers never encode directly; the
// [github.com/inscrib3/drops-go/client] package does it through
// client.WithMultipart.
package upload
