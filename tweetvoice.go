// Package tweetvoice extracts readable text from X posts and long-form
// articles rendered in a browser and hands it to a speech synthesizer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The extraction engine lives in extract/.
// Implementations of the interfaces live in subdirectories named after their
// primary dependency (e.g., rod/, goquery/, gemini/).
package tweetvoice
