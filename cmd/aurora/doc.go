// Command aurora transcribes audio and video files into SRT, plain
// text, PDF, or DOCX documents using ffmpeg and WhisperX.
package main
