// Package rehost moves every image a project references onto the
// content bucket and rewrites the references to CDN URLs.
//
// # Manager
//
// The Manager coordinates one rehosting run:
//
//  1. Collect upload targets: the banner, the four image fields of
//     every card, and the icon of every pack and encounter set
//  2. Fetch, optionally transcode, and upload each target on a bounded
//     worker pool
//  3. Rewrite each originating field to its CDN URL
//  4. Upload the rewritten project document itself
//  5. Register the project with the content API
//
// # Failure model
//
// Per-target failures are captured rather than cancelling siblings:
// uploads already in flight finish, and the run fails with the
// aggregated errors before the project document is uploaded or
// registered. A source URL without a file extension is only a warning;
// that field is skipped and left unrehosted.
//
// # Deduplication
//
// Identical source URLs are uploaded once per run and every field
// referencing them receives the same CDN URL. The guard is best-effort:
// two workers racing on the same URL may upload it twice, which wastes
// a request but corrupts nothing.
package rehost
