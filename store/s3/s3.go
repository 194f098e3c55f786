package s3

// Placeholder for an S3 backed ArchiveStore implementation.
//
// Intent: persist thread snapshots durably in AWS S3 (or a compatible object
// store) behind the core.ArchiveStore interface, keyed by session id and
// revision id. The file stays a stub so the module does not pull an AWS
// dependency into minimal builds; an implementation should take a small
// Config struct (bucket, prefix, ACL, encryption) and keep the client
// surface narrow.
