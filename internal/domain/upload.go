package domain

// Asset is a local image reference produced by a capture source.
type Asset struct {
	URI      string
	MIMEType string
	FileName string
}

// DetectedObject is one recognition hit in an analysis result.
type DetectedObject struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type Analysis struct {
	DetectedObjects []DetectedObject `json:"detected_objects"`
	AnalysisText    string           `json:"analysis_text"`
	AudioURL        string           `json:"audio_url,omitempty"`
}

// AnalysisResult is the structured payload returned by the image
// analysis endpoint.
type AnalysisResult struct {
	Success        bool     `json:"success"`
	Analysis       Analysis `json:"analysis"`
	AudioAvailable bool     `json:"audioAvailable"`
	UserID         string   `json:"userId"`
	Timestamp      string   `json:"timestamp"`
	Message        string   `json:"message,omitempty"`
}

// UploadSession tracks one pass through the capture/upload flow.
// Asset is meaningful only in StagePreviewing and StageUploading;
// Result only in StageResult. Entering StageIdle clears both.
type UploadSession struct {
	ID     string
	Stage  UploadStage
	Asset  *Asset
	Result *AnalysisResult
}

// Reset returns the session to StageIdle and clears the asset and result.
func (s *UploadSession) Reset() {
	s.Stage = StageIdle
	s.Asset = nil
	s.Result = nil
}
