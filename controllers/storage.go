package controllers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/safe-edu/api-go/config"
)

// storageClient wraps the R2 bucket where generated report files and
// intervention attachments live.
type storageClient struct {
	Client *s3.Client
	Config *config.R2Config
}

func newStorageClient() *storageClient {
	r2Config := config.GetR2Config()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &storageClient{Client: client, Config: r2Config}
}

func (sc *storageClient) putObject(ctx context.Context, key, contentType string, body []byte) error {
	_, err := sc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(sc.Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	return err
}

func (sc *storageClient) presignPut(key, contentType string) (string, error) {
	presigner := s3.NewPresignClient(sc.Client)
	req, err := presigner.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(sc.Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (sc *storageClient) presignGet(key string) (string, error) {
	presigner := s3.NewPresignClient(sc.Client)
	req, err := presigner.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(sc.Config.BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
