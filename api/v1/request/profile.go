package request

// UpdateProfileRequest binds the multipart form of a profile update.
// The photo file itself is read separately via FormFile.
type UpdateProfileRequest struct {
	Bio string `form:"bio"`
}
