package services

import (
	"context"
	"os"

	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// IngredientLabel is one recognition hit for a captured camera frame.
type IngredientLabel struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// LabelDetector runs inference on raw image bytes. The Rekognition
// implementation is swapped for a stub in tests.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]IngredientLabel, error)
}

type RekognitionDetector struct {
	client *rekognition.Client
}

func NewRekognitionDetector() (*RekognitionDetector, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionDetector{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionDetector) DetectLabels(ctx context.Context, image []byte) ([]IngredientLabel, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []IngredientLabel
	for _, l := range out.Labels {
		labels = append(labels, IngredientLabel{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}

// RecognizeFrame decodes a data-URL camera frame and runs it through the
// detector.
func RecognizeFrame(ctx context.Context, detector LabelDetector, dataURL string) ([]IngredientLabel, error) {
	image, _, _, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	return detector.DetectLabels(ctx, image)
}
