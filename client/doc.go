// Package client provides the HTTP layer underneath the drops SDK,
// a configurable client built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithRequestID(),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]:
//
//	u := client.URL("https", "api.inscrib3.com", "/drops")
//	req, err := client.Request(ctx, u, http.MethodGet,
//		client.WithAuthorization(header),
//	)
//	err = c.Do(req, client.StatusAny2xx, client.WithDestination(&result))
//
// # Multipart Bodies
//
// File uploads are sent as multipart/form-data through [WithMultipart],
// which encodes an [upload.Form]:
//
//	form := upload.NewForm()
//	form.AddField("name", "Foo")
//	form.AddFile("icon", icon)
//	req, err := client.Request(ctx, u, http.MethodPost, client.WithMultipart(form))
//
// # Tracing
//
// [WithTracer] wraps the transport so every round trip produces a
// client span, and the globally registered OpenTelemetry propagator
// injects trace context into the outgoing headers.
package client
