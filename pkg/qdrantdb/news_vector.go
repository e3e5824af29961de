package qdrantdb

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"hyperlocal/repository"
)

const collectionPrefix = "news_"

var pointNamespace = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

func CollectionName(locality string) string {
	return collectionPrefix + locality
}

// PointID derives a stable UUID from the chunk content, so re-ingesting the
// same corpus upserts points instead of duplicating them.
func PointID(content string) string {
	hash := sha256.Sum256([]byte(content))
	return uuid.NewSHA1(pointNamespace, hash[:16]).String()
}

func (c *Client) EnsureCollection(ctx context.Context, locality string, dim uint64) error {
	name := CollectionName(locality)
	exists, err := c.qdrant.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", name, err)
	}
	if exists {
		return nil
	}

	err = c.qdrant.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dim,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}

	for _, field := range []string{"locality", "source"} {
		_, err = c.qdrant.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: name,
			FieldName:      field,
			FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		})
		if err != nil {
			return fmt.Errorf("create %s index on %s: %w", field, name, err)
		}
	}
	return nil
}

func (c *Client) Upsert(ctx context.Context, locality string, docs []*repository.ChunkDoc) error {
	if len(docs) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(docs))
	for _, doc := range docs {
		md := map[string]any{
			"content":     doc.Content,
			"source":      doc.Source,
			"locality":    doc.Locality,
			"chunk_index": doc.ChunkIndex,
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(PointID(doc.Content)),
			Vectors: qdrant.NewVectorsDense(doc.Vector),
			Payload: qdrant.NewValueMap(md),
		})
	}

	name := CollectionName(locality)
	_, err := c.qdrant.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: name,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upsert %d points into %s: %w", len(points), name, err)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, locality string, vector []float32, topK uint64) ([]*repository.ChunkDoc, error) {
	name := CollectionName(locality)
	scored, err := c.qdrant.Query(ctx, &qdrant.QueryPoints{
		CollectionName: name,
		Query:          qdrant.NewQueryDense(vector),
		Limit:          &topK,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	docs := make([]*repository.ChunkDoc, 0, len(scored))
	for _, point := range scored {
		payload := point.GetPayload()
		docs = append(docs, &repository.ChunkDoc{
			Content:    payload["content"].GetStringValue(),
			Source:     payload["source"].GetStringValue(),
			Locality:   payload["locality"].GetStringValue(),
			ChunkIndex: int(payload["chunk_index"].GetIntegerValue()),
			Score:      point.GetScore(),
		})
	}
	return docs, nil
}

func (c *Client) Count(ctx context.Context, locality string) (uint64, error) {
	count, err := c.qdrant.Count(ctx, &qdrant.CountPoints{
		CollectionName: CollectionName(locality),
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", CollectionName(locality), err)
	}
	return count, nil
}

// Ensure Client implements the vector repository interface
var _ repository.NewsVectorRepo = (*Client)(nil)
