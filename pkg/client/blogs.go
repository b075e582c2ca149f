package client

import "context"

// ListBlogs returns published blog posts, newest first as served
func (c *Client) ListBlogs(ctx context.Context) ([]BlogPost, error) {
	return list[BlogPost](ctx, c, GetBlogs)
}

// ListAllBlogs includes unpublished drafts
func (c *Client) ListAllBlogs(ctx context.Context) ([]BlogPost, error) {
	return list[BlogPost](ctx, c, GetAllBlogs)
}

// ListPopularBlogs returns the most viewed posts
func (c *Client) ListPopularBlogs(ctx context.Context) ([]BlogPost, error) {
	return list[BlogPost](ctx, c, GetPopularBlogs)
}

func (c *Client) ListBlogsByCategory(ctx context.Context, category string) ([]BlogPost, error) {
	return list[BlogPost](ctx, c, GetBlogsByCategory, category)
}

// GetBlogBySlug returns the post or nil when the backend has none. The
// backend counts this read as a view.
func (c *Client) GetBlogBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	return one[BlogPost](ctx, c, GetBlogBySlug, slug)
}

func (c *Client) GetBlogByID(ctx context.Context, id string) (*BlogPost, error) {
	return one[BlogPost](ctx, c, GetBlogByID, id)
}
