package cue

// FileData describes one FILE entry of a cue sheet: a referenced data or
// audio file and the tracks laid out inside it. File and FileType are nil
// when absent from the input.
type FileData struct {
	File     *string
	FileType *string
	Tracks   []*TrackData
}

// NewFileData returns an empty file entry.
func NewFileData() *FileData {
	return &FileData{}
}
