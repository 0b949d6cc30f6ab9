package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/datasource"
	"github.com/cubestats/analytics/pkg/service"
)

// userHeader carries the acting user's id; authentication itself is the
// reverse proxy's job.
const userHeader = "X-Analytics-User"

type routes struct {
	datasets   *service.DatasetService
	shares     *service.ShareService
	thresholds *service.ThresholdService
	dataloads  *service.DataService
	registry   *datasource.Registry
	parser     contract.HTTPRequestParser
}

func (r *routes) register(app *fiber.App) {
	app.Get("/datasource", r.listDatasources)
	app.Get("/datasource/templates", r.listDatasourceTemplates)
	app.Get("/datasource/read", r.readDatasourceQuery)
	app.Post("/datasource/read", r.readDatasource)

	app.Get("/dataload/:datasetId", r.indexDataloads)
	app.Post("/dataload", r.createDataload)
	app.Put("/dataload/:id", r.updateDataload)
	app.Delete("/dataload/:id", r.deleteDataload)
	app.Post("/dataload/simulate", r.simulateDataload)
	app.Post("/dataload/execute", r.executeDataload)

	app.Get("/threshold/:datasetId", r.listThresholds)
	app.Post("/threshold", r.createThreshold)
	app.Delete("/threshold/:id", r.deleteThreshold)

	app.Get("/share/shared", r.listSharedDatasets)
	app.Get("/share/token/:token", r.getDatasetByToken)
	app.Get("/share/:datasetId", r.listShares)
	app.Post("/share", r.createShare)
	app.Put("/share/:id", r.updateShare)
	app.Delete("/share/dataset/:datasetId", r.deleteSharesByDataset)
	app.Delete("/share/:id", r.deleteShare)

	app.Get("/dataset", r.listDatasets)
	app.Post("/dataset", r.createDataset)
	app.Get("/dataset/:id", r.getDataset)
	app.Put("/dataset/:id", r.updateDataset)
	app.Delete("/dataset/:id", r.deleteDataset)
	app.Get("/dataset/:id/data", r.getDatasetRows)

	app.Get("/activity/:datasetId", r.listActivities)
}

func requestUser(c *fiber.Ctx) string {
	if user := c.Get(userHeader); user != "" {
		return user
	}

	return "anonymous"
}

func paramID(c *fiber.Ctx, name string) (int64, *contract.Error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			"invalid value for parameter '"+name+"'",
			err,
		)
	}

	return id, nil
}

// Datasources

func (r *routes) listDatasources(c *fiber.Ctx) error {
	return c.JSON(r.registry.ListAll())
}

func (r *routes) listDatasourceTemplates(c *fiber.Ctx) error {
	return c.JSON(r.registry.ListTemplates())
}

func (r *routes) readDatasource(c *fiber.Ctx) error {
	var input api.ReadDatasourceRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	result, err := r.registry.Read(c.UserContext(), input.DatasourceID, input.Options)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// readDatasourceQuery is the GET variant: the datasource id travels in the
// datasourceId query parameter, every other query parameter is an option.
func (r *routes) readDatasourceQuery(c *fiber.Ctx) error {
	id := c.Query("datasourceId")
	if id == "" {
		return contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"missing value for required parameter 'datasourceId'",
		)
	}

	options := make(map[string]string)
	for key, value := range c.Queries() {
		if key != "datasourceId" {
			options[key] = value
		}
	}

	result, err := r.registry.Read(c.UserContext(), id, options)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Dataloads

func (r *routes) indexDataloads(c *fiber.Ctx) error {
	datasetID, cErr := paramID(c, "datasetId")
	if cErr != nil {
		return cErr
	}

	index, cErr := r.dataloads.Index(datasetID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(index)
}

func (r *routes) createDataload(c *fiber.Ctx) error {
	var input api.CreateDataloadRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	dataload, cErr := r.dataloads.Create(requestUser(c), &input)
	if cErr != nil {
		return cErr
	}

	return c.Status(fiber.StatusCreated).JSON(dataload)
}

func (r *routes) updateDataload(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	var input api.UpdateDataloadRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	dataload, cErr := r.dataloads.Update(id, &input)
	if cErr != nil {
		return cErr
	}

	return c.JSON(dataload)
}

func (r *routes) deleteDataload(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	if cErr := r.dataloads.Delete(id); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (r *routes) simulateDataload(c *fiber.Ctx) error {
	var input api.ExecuteDataloadRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	result, cErr := r.dataloads.Simulate(c.UserContext(), input.DataloadID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(fiber.Map{"data": result})
}

func (r *routes) executeDataload(c *fiber.Ctx) error {
	var input api.ExecuteDataloadRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	result, cErr := r.dataloads.Execute(c.UserContext(), input.DataloadID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(result)
}

// Thresholds

func (r *routes) listThresholds(c *fiber.Ctx) error {
	datasetID, cErr := paramID(c, "datasetId")
	if cErr != nil {
		return cErr
	}

	thresholds, cErr := r.thresholds.ListByDataset(datasetID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(thresholds)
}

func (r *routes) createThreshold(c *fiber.Ctx) error {
	var input api.CreateThresholdRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	threshold, cErr := r.thresholds.Create(requestUser(c), &input)
	if cErr != nil {
		return cErr
	}

	return c.Status(fiber.StatusCreated).JSON(threshold)
}

func (r *routes) deleteThreshold(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	if cErr := r.thresholds.Delete(id); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Shares

func (r *routes) listShares(c *fiber.Ctx) error {
	datasetID, cErr := paramID(c, "datasetId")
	if cErr != nil {
		return cErr
	}

	shares, cErr := r.shares.Read(datasetID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(shares)
}

func (r *routes) createShare(c *fiber.Ctx) error {
	var input api.CreateShareRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	share, cErr := r.shares.Create(requestUser(c), &input)
	if cErr != nil {
		return cErr
	}

	return c.Status(fiber.StatusCreated).JSON(share)
}

func (r *routes) updateShare(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	var input api.UpdateShareRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	if cErr := r.shares.Update(id, input.Password); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (r *routes) deleteShare(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	if cErr := r.shares.Delete(id); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (r *routes) deleteSharesByDataset(c *fiber.Ctx) error {
	datasetID, cErr := paramID(c, "datasetId")
	if cErr != nil {
		return cErr
	}

	if cErr := r.shares.DeleteByDataset(datasetID); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (r *routes) listSharedDatasets(c *fiber.Ctx) error {
	user := c.Query("userId")
	if user == "" {
		user = requestUser(c)
	}

	datasets, cErr := r.shares.GetSharedDatasets(user)
	if cErr != nil {
		return cErr
	}

	return c.JSON(datasets)
}

func (r *routes) getDatasetByToken(c *fiber.Ctx) error {
	dataset, cErr := r.shares.GetDatasetByToken(c.Params("token"))
	if cErr != nil {
		return cErr
	}

	return c.JSON(dataset)
}

// Datasets

func (r *routes) listDatasets(c *fiber.Ctx) error {
	datasets, cErr := r.datasets.List(requestUser(c))
	if cErr != nil {
		return cErr
	}

	return c.JSON(datasets)
}

func (r *routes) createDataset(c *fiber.Ctx) error {
	var input api.CreateDatasetRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	dataset, cErr := r.datasets.Create(requestUser(c), &input)
	if cErr != nil {
		return cErr
	}

	return c.Status(fiber.StatusCreated).JSON(dataset)
}

func (r *routes) getDataset(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	dataset, cErr := r.datasets.Get(id)
	if cErr != nil {
		return cErr
	}

	return c.JSON(dataset)
}

func (r *routes) updateDataset(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	var input api.UpdateDatasetRequest
	if err := r.parser.ParseBody(c, &input); err != nil {
		return err
	}

	dataset, cErr := r.datasets.Update(id, &input)
	if cErr != nil {
		return cErr
	}

	return c.JSON(dataset)
}

func (r *routes) deleteDataset(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	if cErr := r.datasets.Delete(id); cErr != nil {
		return cErr
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (r *routes) getDatasetRows(c *fiber.Ctx) error {
	id, cErr := paramID(c, "id")
	if cErr != nil {
		return cErr
	}

	rows, cErr := r.datasets.GetRows(id)
	if cErr != nil {
		return cErr
	}

	return c.JSON(rows)
}

// Activity

func (r *routes) listActivities(c *fiber.Ctx) error {
	datasetID, cErr := paramID(c, "datasetId")
	if cErr != nil {
		return cErr
	}

	activities, cErr := r.datasets.ListActivities(datasetID)
	if cErr != nil {
		return cErr
	}

	return c.JSON(activities)
}
