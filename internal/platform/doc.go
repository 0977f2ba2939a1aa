package platform

// Package platform contains OS integration helpers: filesystem paths,
// OS open/reveal for exported files, and path display formatting.
