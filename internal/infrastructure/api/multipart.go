package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/sellerdash/client/internal/domain/seller"
)

// encodeProductForm builds the multipart body for product creation. Image
// parts are named image1..image4 in slot order; nil entries are skipped.
func encodeProductForm(input seller.NewProduct) (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price.String(),
		"category":    input.Category,
		"subCategory": input.SubCategory,
		"bestSeller":  strconv.FormatBool(input.BestSeller),
	}
	if input.Category == seller.CategoryFashion {
		sizes, err := json.Marshal(input.Sizes)
		if err != nil {
			return "", nil, fmt.Errorf("api: failed to encode sizes: %w", err)
		}
		fields["size"] = string(sizes)
	} else {
		fields["quantity"] = strconv.FormatInt(input.Quantity, 10)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("api: failed to write form field %s: %w", name, err)
		}
	}

	for i, img := range input.Images {
		if img.Data == nil {
			continue
		}
		if err := writeImagePart(w, fmt.Sprintf("image%d", i+1), img); err != nil {
			return "", nil, err
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("api: failed to finalize form: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}

// encodeRegistrationForm builds the multipart body for seller signup.
func encodeRegistrationForm(form seller.Registration) (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":         form.Name,
		"email":        form.Email,
		"password":     form.Password,
		"storeName":    form.StoreName,
		"phone":        form.Phone,
		"address":      form.Address,
		"gstNumber":    form.GSTNumber,
		"panNumber":    form.PANNumber,
		"businessType": form.BusinessType,
		"terms":        strconv.FormatBool(form.Terms),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("api: failed to write form field %s: %w", name, err)
		}
	}

	if form.ProfileImage != nil {
		if err := writeImagePart(w, "profileImage", *form.ProfileImage); err != nil {
			return "", nil, err
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("api: failed to finalize form: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}

// writeImagePart adds a file part carrying the image's own content type
// instead of the default application/octet-stream.
func writeImagePart(w *multipart.Writer, field string, img seller.ImageFile) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, img.Name))
	if img.ContentType != "" {
		header.Set("Content-Type", img.ContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("api: failed to create image part %s: %w", field, err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return fmt.Errorf("api: failed to write image part %s: %w", field, err)
	}
	return nil
}
