// Package server manages the lifecycle of the application's transport
// servers. It starts the HTTP server, listens for termination signals, and
// shuts everything down gracefully.
package server
