package client

import (
	"context"

	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// Events implements culture.ResourceClient.Events.
func (c *Client) Events(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceEvents, 0, query)
}

// Event implements culture.ResourceClient.Event.
func (c *Client) Event(ctx context.Context, id int, query *culture.Query) (*culture.Response, error) {
	return c.fetchItem(ctx, culture.ResourceEvents, id, query)
}

// Articles implements culture.ResourceClient.Articles.
func (c *Client) Articles(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceArticles, 0, query)
}

// Categories implements culture.ResourceClient.Categories.
func (c *Client) Categories(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceCategories, 0, query)
}

// Tags implements culture.ResourceClient.Tags.
func (c *Client) Tags(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceTags, 0, query)
}

// Locales implements culture.ResourceClient.Locales.
func (c *Client) Locales(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceLocales, 0, query)
}

// Organizations implements culture.ResourceClient.Organizations.
func (c *Client) Organizations(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourceOrganizations, 0, query)
}

// Places implements culture.ResourceClient.Places.
func (c *Client) Places(ctx context.Context, query *culture.Query) (*culture.Response, error) {
	return c.fetch(ctx, culture.ResourcePlaces, 0, query)
}

// Place implements culture.ResourceClient.Place.
func (c *Client) Place(ctx context.Context, id int, query *culture.Query) (*culture.Response, error) {
	return c.fetchItem(ctx, culture.ResourcePlaces, id, query)
}
