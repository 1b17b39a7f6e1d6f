package ali

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/tools"
)

var (
	OssClient *ossClient
)

type ossClient struct {
	client     *oss.Client
	endpoint   string
	bucketName string
	directory  string
}

func InitOSS(config config.AliOss) {
	credential := credentials.NewStaticCredentialsProvider(config.AccessKeyId, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(config.Endpoint).WithRegion(config.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		panic("create oss client failed")
	}
	OssClient = &ossClient{
		client:     client,
		endpoint:   config.Endpoint,
		bucketName: config.Bucket,
		directory:  config.Directory,
	}
}

// UploadImage stores the bytes under a fresh opaque key and returns it.
// The key, not a URL, is what gets persisted.
func (o *ossClient) UploadImage(b []byte) (string, error) {
	ext := tools.DetectImageType(b).String()
	if ext == "" {
		ext = "bin"
	}
	key := o.fullPath(uuid.New().String() + "." + ext)
	return key, o.upload(key, bytes.NewReader(b))
}

// UploadWithKey stores the bytes under a caller-chosen key, used for
// derived objects such as thumbnails.
func (o *ossClient) UploadWithKey(key string, reader io.Reader) error {
	return o.upload(key, reader)
}

// URL presigns a GET for the key. URLs are derived on every read and
// never stored.
func (o *ossClient) URL(key string, expire time.Duration) (string, error) {
	ret, err := o.client.Presign(context.TODO(), &oss.GetObjectRequest{Bucket: oss.Ptr(o.bucketName), Key: oss.Ptr(key)}, oss.PresignExpires(expire))
	if err != nil {
		return "", err
	}
	return ret.URL, nil
}

// Exists reports whether the key currently resolves to a stored object.
// Presigning succeeds for any key, so callers that want a working URL
// for an optional object check here first.
func (o *ossClient) Exists(key string) (bool, error) {
	return o.client.IsObjectExist(context.TODO(), o.bucketName, key)
}

func (o *ossClient) Delete(key string) error {
	_, err := o.client.DeleteObject(context.TODO(), &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(o.bucketName),
		Key:    oss.Ptr(key),
	})
	return err
}

// ThumbKey derives the storage key of an image's gallery thumbnail.
func ThumbKey(key string) string {
	return "thumb/" + key
}

func (o *ossClient) fullPath(fName string) string {
	return o.directory + fName
}

func (o *ossClient) upload(key string, reader io.Reader) error {
	request := &oss.PutObjectRequest{
		Bucket: oss.Ptr(o.bucketName),
		Key:    oss.Ptr(key),
		Body:   reader,
	}
	_, err := o.client.PutObject(context.TODO(), request)
	if err != nil {
		return err
	}
	return nil
}
