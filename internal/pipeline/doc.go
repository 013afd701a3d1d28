// Package pipeline orchestrates the transcription workflow: media
// classification, audio extraction, recognition, destination
// resolution, and export. One job runs at a time; a second request
// while a job is active is rejected, not queued.
package pipeline
