package webspaced

import (
	"context"
	"net/http"
)

// Images lists the images webspaces can be created from.
func (c *Client) Images(ctx context.Context) ([]Image, error) {
	var images []Image
	if err := c.Do(ctx, http.MethodGet, "/v1/images", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// FindImage looks up an image by alias, falling back to fingerprint.
// An alias match always wins over a fingerprint match.
func FindImage(images []Image, id string) (*Image, bool) {
	for i := range images {
		for _, a := range images[i].Aliases {
			if a.Name == id {
				return &images[i], true
			}
		}
	}

	for i := range images {
		if images[i].Fingerprint == id {
			return &images[i], true
		}
	}

	return nil, false
}

// ResolveImage fetches the image list and finds id in it.
func (c *Client) ResolveImage(ctx context.Context, id string) (*Image, error) {
	images, err := c.Images(ctx)
	if err != nil {
		return nil, err
	}

	image, ok := FindImage(images, id)
	if !ok {
		return nil, &Error{
			Message: "\"" + id + "\" is not a valid image alias / fingerprint",
			Err:     ErrImageNotFound,
		}
	}
	return image, nil
}
