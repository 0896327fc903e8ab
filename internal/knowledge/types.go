package knowledge

// UploadedFile is one file from an upload batch, fully read into memory.
type UploadedFile struct {
	Name    string
	Content []byte
}

// TrainOutput summarizes one ingestion run.
type TrainOutput struct {
	Documents int // files that contributed text
	Chunks    int // chunks embedded and stored
}
