package domain

type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemDone    ItemStatus = "done"
)

// ToggleStatus returns the other of the two checklist statuses.
// There is no third state.
func ToggleStatus(s ItemStatus) ItemStatus {
	if s == ItemDone {
		return ItemPending
	}
	return ItemDone
}

type UploadStage string

const (
	StageIdle       UploadStage = "idle"
	StageSelecting  UploadStage = "selecting"
	StagePreviewing UploadStage = "previewing"
	StageUploading  UploadStage = "uploading"
	StageResult     UploadStage = "result"
)

type SourceKind string

const (
	SourceGallery SourceKind = "gallery"
	SourceCamera  SourceKind = "camera"
)

// ValidSourceKinds is the canonical set of accepted capture source strings.
var ValidSourceKinds = map[string]bool{
	"gallery": true, "camera": true,
}
