package ports

import "context"

// AssociationRepository persists many-to-many join rows between two parent
// entities. Rows are independent records holding both parent ids; the store
// enforces no uniqueness and no foreign-key cascade, so the same pair may
// exist more than once and cascades are driven by the owning service.
type AssociationRepository interface {
	// Insert adds one join row. Duplicate pairs are permitted.
	Insert(ctx context.Context, leftID, rightID string) error
	// DeleteOnePair removes a single row matching the exact pair.
	// No-op when no row matches.
	DeleteOnePair(ctx context.Context, leftID, rightID string) error
	// DeleteByLeft removes every row referencing the left parent.
	DeleteByLeft(ctx context.Context, leftID string) error
	// DeleteByRight removes every row referencing the right parent.
	DeleteByRight(ctx context.Context, rightID string) error
	// ListRightIDs returns the right-parent ids linked to leftID,
	// duplicates included.
	ListRightIDs(ctx context.Context, leftID string) ([]string, error)
}
