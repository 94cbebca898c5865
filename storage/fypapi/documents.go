package fypapi

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/document"
)

var _ document.Repository = (*Client)(nil)

func (c *Client) MyDocuments(ctx context.Context) ([]document.Document, error) {
	var list []document.Document
	if err := c.do(ctx, call{method: rest.Get, path: "/student/documents"}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SubmitDocument uploads the file as multipart/form-data with its title and type.
func (c *Client) SubmitDocument(ctx context.Context, nd document.NewDocument) (document.Document, error) {
	var doc document.Document
	if nd.File == nil {
		return doc, errors.New("document has no file")
	}

	var buff bytes.Buffer
	mw := multipart.NewWriter(&buff)
	_ = mw.WriteField("title", nd.Title)
	_ = mw.WriteField("type", string(nd.Type))
	part, err := mw.CreateFormFile("file", nd.FileName)
	if err != nil {
		return doc, errors.Wrap(err, "creating form file")
	}
	if _, err = io.Copy(part, nd.File); err != nil {
		return doc, errors.Wrap(err, "copying upload")
	}
	if err = mw.Close(); err != nil {
		return doc, errors.Wrap(err, "closing multipart writer")
	}

	cl := call{method: rest.Post, path: "/student/documents", raw: buff.Bytes(), contentType: mw.FormDataContentType()}
	err = c.do(ctx, cl, &doc)
	return doc, err
}

func (c *Client) GroupDocuments(ctx context.Context, groupID string) ([]document.Document, error) {
	var list []document.Document
	if err := c.do(ctx, call{method: rest.Get, path: pathf("/supervisor/groups/%s/documents", groupID)}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ReviewDocument(ctx context.Context, id string, r document.Review) (document.Document, error) {
	var doc document.Document
	err := c.do(ctx, call{method: rest.Put, path: pathf("/supervisor/documents/%s/review", id), body: r}, &doc)
	return doc, err
}
