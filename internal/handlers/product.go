// internal/handlers/product.go
package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codevault/codevault-backend/internal/catalog"
	"github.com/codevault/codevault-backend/internal/services"
	"github.com/codevault/codevault-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// parseListQuery turns the catalog query parameters into a filter and a
// normalized page window.
func parseListQuery(c *gin.Context) (catalog.Filter, catalog.Page) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := catalog.Filter{
		Category: c.Query("category"),
		Language: c.Query("language"),
		Search:   c.Query("search"),
	}

	return filter, catalog.NewPage(page, limit)
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter, page := parseListQuery(c)

	result, err := h.productService.ListProducts(filter, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := h.bindMultipart(c, &req); err != nil {
			utils.BadRequestResponse(c, err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) bindMultipart(c *gin.Context, req *services.CreateProductRequest) error {
	req.Title = c.PostForm("title")
	req.Description = c.PostForm("description")
	req.Language = c.PostForm("language")
	req.Category = c.PostForm("category")
	if price := c.PostForm("price"); price != "" {
		req.Price, _ = strconv.ParseFloat(price, 64)
	}
	if tags := c.PostForm("tags"); tags != "" {
		req.Tags = strings.Split(tags, ",")
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	req.FileData = data
	req.FileName = header.Filename
	req.FileContentType = header.Header.Get("Content-Type")
	return nil
}

// POST /api/products/:id/purchase
func (h *ProductHandler) PurchaseProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	downloadURL, err := h.productService.Purchase(productID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Purchase successful",
		"downloadUrl": downloadURL,
	})
}

// POST /api/products/:id/rate
func (h *ProductHandler) RateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.RateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	product, err := h.productService.Rate(productID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
